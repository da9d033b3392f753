package rds

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/weegigs/visit-counter-go/support"
)

// RedisTestStore starts a redis container and returns a store using the "test-crc-visitors"
// namespace, along with the redis url it connects to.
func RedisTestStore(ctx context.Context) (*RedisCounterStore, string, func(), error) {
	db, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForListeningPort("6379"),
			},
			Started: true,
		},
	)
	if err != nil {
		return nil, "", nil, err
	}

	terminate := func() {
		if err := db.Terminate(ctx); err != nil {
			panic(err)
		}
	}

	host, err := db.Host(ctx)
	if err != nil {
		terminate()
		return nil, "", nil, err
	}

	port, err := db.MappedPort(ctx, "6379")
	if err != nil {
		terminate()
		return nil, "", nil, err
	}

	url := fmt.Sprintf("redis://%s:%s/0", host, port.Port())
	client, err := Client(support.Config{Endpoint: url})
	if err != nil {
		terminate()
		return nil, "", nil, err
	}

	return NewCounterStore(client, "test-crc-visitors"), url, func() {
		_ = client.Close()
		terminate()
	}, nil
}
