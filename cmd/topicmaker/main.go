package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lovoo/goka"
	"github.com/tecnostore/storefront/config"
	"github.com/tecnostore/storefront/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 1
	deletePolicy      = "delete"
	compactPolicy     = "compact"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	cl := createClient(cfg.Broker.SeedBrokers)
	defer cl.Close()

	printStart(cfg)
	defer printComplete(time.Now())

	// stream topics
	err := makeTopics(
		sigCtx, cl, deletePolicy,
		cfg.Broker.Topics.ClientEvents,
	)
	if err != nil {
		printFail(err)
		return
	}

	// group table topics
	err = makeTopics(
		sigCtx, cl, compactPolicy,
		toGroupTable(cfg.Broker.Consumers.ActivityGroup),
	)
	if err != nil {
		printFail(err)
		return
	}
}

func createClient(seedBrokers []string) *kadm.Client {
	cl, err := kadm.NewOptClient(
		kgo.SeedBrokers(seedBrokers...),
	)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

func makeTopics(
	ctx context.Context, cl *kadm.Client, cleanupPolicy string, topics ...string,
) error {
	minISR := "1"

	config := map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"min.insync.replicas": &minISR,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		if res.Err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, res.Err)
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(cfg config.Config) {
	fmt.Printf(`initializing topics...
	- %q
	- %q

`,
		cfg.Broker.Topics.ClientEvents,
		toGroupTable(cfg.Broker.Consumers.ActivityGroup),
	)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}

func toGroupTable(group string) string {
	return string(goka.GroupTable(goka.Group(group)))
}
