package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module"
	"github.com/bastionlabs/bastion-go/module/metrics"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/safety/remote"
	"github.com/bastionlabs/bastion-go/safety/safetyrules"
	"github.com/bastionlabs/bastion-go/safety/serializer"
	storagebadger "github.com/bastionlabs/bastion-go/storage/badger"
)

type namedComponent struct {
	name      string
	component module.ReadyDoneAware
}

// SafetyNode assembles the signer daemon: badger-backed safety store, safety
// rules engine, serializing service, remote transport and metrics server. The
// build steps run in order and any failure is fatal, since a signer that
// cannot load its state must not come up half-initialized.
type SafetyNode struct {
	conf Config
	log  zerolog.Logger

	nodeID    bastion.Identifier
	db        *badger.DB
	store     *storagebadger.Store
	registry  *prometheus.Registry
	collector *metrics.SafetyCollector
	engine    *safetyrules.SafetyRules

	components []namedComponent
	started    []namedComponent
	sig        chan os.Signal
}

func NewSafetyNode(conf Config) *SafetyNode {
	return &SafetyNode{
		conf: conf,
		sig:  make(chan os.Signal, 1),
	}
}

// MustNot returns a fatal log event if err is non-nil, so build steps can
// attach their message with the error already bound.
func (node *SafetyNode) MustNot(err error) *zerolog.Event {
	if err != nil {
		return node.log.Fatal().Err(err)
	}
	return nil
}

func (node *SafetyNode) initLogger() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Str("node_id", node.conf.NodeID).Logger()

	lvl, err := zerolog.ParseLevel(strings.ToLower(node.conf.Level))
	if err != nil {
		log.Fatal().Err(err).Str("loglevel", node.conf.Level).Msg("invalid log level")
	}
	node.log = log.Level(lvl)

	node.log.Info().Msg("safety daemon starting up")
}

func (node *SafetyNode) initNodeID() {
	nodeID, err := bastion.HexStringToID(node.conf.NodeID)
	node.MustNot(err).Str("nodeid", node.conf.NodeID).Msg("could not parse node ID")
	node.nodeID = nodeID
}

func (node *SafetyNode) initDatabase() {
	db, err := badger.Open(badger.DefaultOptions(node.conf.Datadir).WithLogger(nil))
	node.MustNot(err).Str("datadir", node.conf.Datadir).Msg("could not open key-value store")
	node.db = db
	node.store = storagebadger.NewStore(db)
}

func (node *SafetyNode) initMetrics() {
	node.registry = prometheus.NewRegistry()
	node.collector = metrics.NewSafetyCollector(node.registry)
}

// initEngine creates the safety rules engine and recovers its state from the
// store. A store that has never been bootstrapped is fatal here: a signer
// without a trusted epoch state has nothing it may sign.
func (node *SafetyNode) initEngine() {
	engine := safetyrules.New(node.log, node.collector, node.store, node.nodeID)

	err := engine.Initialize(nil)
	if safety.IsNotInitializedError(err) {
		node.log.Fatal().Err(err).Msg("store holds no safety state, provision it with --bootstrap")
	}
	node.MustNot(err).Msg("could not recover safety state")

	node.engine = engine
}

func (node *SafetyNode) initComponents() {
	service := serializer.NewService(node.log, node.collector, node.engine)

	node.components = []namedComponent{
		{"metrics server", metrics.NewServer(node.log, node.conf.MetricsPort, node.registry, node.conf.ProfilerEnabled)},
		{"safety server", remote.NewServer(node.log, node.conf.Bind, service)},
	}
}

func (node *SafetyNode) startComponent(c namedComponent) {
	select {
	case <-c.component.Ready():
		node.log.Info().Msg(c.name + " ready")
	case <-time.After(node.conf.Timeout):
		node.log.Fatal().Msg("could not start " + c.name)
	case <-node.sig:
		node.log.Warn().Msg(c.name + " start aborted")
		os.Exit(1)
	}
	node.started = append(node.started, c)
}

func (node *SafetyNode) stopComponent(c namedComponent) {
	select {
	case <-c.component.Done():
		node.log.Info().Msg(c.name + " shutdown complete")
	case <-time.After(node.conf.Timeout):
		node.log.Fatal().Msg("could not stop " + c.name)
	case <-node.sig:
		node.log.Warn().Msg(c.name + " stop aborted")
		os.Exit(1)
	}
}

// Run builds the node, starts its components in order, waits for an
// interrupt and shuts the components down in reverse order.
func (node *SafetyNode) Run() {
	signal.Notify(node.sig, os.Interrupt, syscall.SIGTERM)

	node.initLogger()
	node.initNodeID()
	node.initDatabase()
	node.initMetrics()
	node.bootstrapStore()
	node.initEngine()
	node.initComponents()

	for _, c := range node.components {
		node.startComponent(c)
	}

	node.log.Info().Msg("safety daemon startup complete")

	<-node.sig

	node.log.Info().Msg("safety daemon shutting down")

	for i := len(node.started) - 1; i >= 0; i-- {
		node.stopComponent(node.started[i])
	}

	err := node.db.Close()
	if err != nil {
		node.log.Err(err).Msg("could not close key-value store")
	}

	node.log.Info().Msg("safety daemon shutdown complete")
	os.Exit(0)
}
