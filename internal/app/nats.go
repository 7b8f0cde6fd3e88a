package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// ConnectNATS dials with unlimited reconnects so a broker restart does not
// take the service down.
func ConnectNATS(cfg config.NATS, name string, log logrus.FieldLogger) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.PingInterval(10*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnf("nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("nats reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("error connecting to nats at %s: %w", cfg.URL, err)
	}
	return conn, nil
}

func natsComponent(conn *nats.Conn) Component {
	return Component{
		Name: "nats",
		Stop: func(ctx context.Context) error {
			done := make(chan struct{})
			conn.SetClosedHandler(func(*nats.Conn) { close(done) })
			if err := conn.Drain(); err != nil {
				conn.Close()
				return err
			}
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				conn.Close()
				return ctx.Err()
			}
		},
	}
}
