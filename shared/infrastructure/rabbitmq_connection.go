package infrastructure

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConnected is returned while the broker connection is being re-established.
var ErrNotConnected = errors.New("message channel not connected")

const defaultReconnectDelay = 5 * time.Second

// RabbitMQConnection owns the broker connection and redials it with a fixed
// delay whenever it drops. Publishers and subscribers open their own channels.
type RabbitMQConnection struct {
	url            string
	reconnectDelay time.Duration
	logger         *slog.Logger
	dial           func(url string) (*amqp.Connection, error)

	mu        sync.RWMutex
	conn      *amqp.Connection
	ready     chan struct{}
	connected bool
	closed    bool
}

// NewRabbitMQConnection creates a connection manager; call Start to dial.
func NewRabbitMQConnection(url string, reconnectDelay time.Duration, logger *slog.Logger) *RabbitMQConnection {
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}
	return &RabbitMQConnection{
		url:            url,
		reconnectDelay: reconnectDelay,
		logger:         logger,
		dial:           amqp.Dial,
		ready:          make(chan struct{}),
	}
}

// Start makes a first connection attempt and keeps the connection alive in the
// background until ctx is done. A failed first attempt is not fatal.
func (c *RabbitMQConnection) Start(ctx context.Context) {
	if err := c.connect(); err != nil {
		c.logger.Warn("message broker unavailable, retrying",
			slog.Duration("retry_in", c.reconnectDelay),
			slog.Any("error", err),
		)
	}
	go c.supervise(ctx)
}

func (c *RabbitMQConnection) supervise(ctx context.Context) {
	for {
		conn := c.current()
		if conn == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.reconnectDelay):
			}
			if err := c.connect(); err != nil {
				c.logger.Warn("message broker reconnect failed",
					slog.Duration("retry_in", c.reconnectDelay),
					slog.Any("error", err),
				)
			}
			continue
		}

		closeCh := conn.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-ctx.Done():
			return
		case amqpErr := <-closeCh:
			if c.isClosed() {
				return
			}
			c.logger.Warn("message broker connection lost", slog.Any("error", amqpErr))
			c.markDisconnected(conn)
		}
	}
}

func (c *RabbitMQConnection) connect() error {
	conn, err := c.dial(c.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial message broker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		_ = conn.Close()
		return ErrNotConnected
	}

	c.conn = conn
	if !c.connected {
		c.connected = true
		close(c.ready)
	}
	c.logger.Info("message broker connected")
	return nil
}

func (c *RabbitMQConnection) markDisconnected(conn *amqp.Connection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != conn {
		return
	}
	c.conn = nil
	if c.connected {
		c.connected = false
		c.ready = make(chan struct{})
	}
}

func (c *RabbitMQConnection) current() *amqp.Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}

func (c *RabbitMQConnection) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Ready returns a channel closed once the connection is up.
func (c *RabbitMQConnection) Ready() <-chan struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// ReconnectDelay is the fixed wait between reconnect attempts
func (c *RabbitMQConnection) ReconnectDelay() time.Duration {
	return c.reconnectDelay
}

// Channel opens a new AMQP channel on the current connection.
func (c *RabbitMQConnection) Channel() (*amqp.Channel, error) {
	conn := c.current()
	if conn == nil || conn.IsClosed() {
		return nil, ErrNotConnected
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open channel")
	}
	return ch, nil
}

// Close stops reconnecting and closes the connection
func (c *RabbitMQConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return errors.Wrap(err, "failed to close broker connection")
	}
	return nil
}
