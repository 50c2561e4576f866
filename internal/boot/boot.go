package boot

import (
	"fmt"

	"github.com/l1jgo/classkit/internal/class"
	"github.com/l1jgo/classkit/internal/config"
	"github.com/l1jgo/classkit/internal/logging"
	"github.com/l1jgo/classkit/internal/schema"
	"go.uber.org/zap"
)

// RegisterFunc adds one package's classes to the registry.
type RegisterFunc func(*class.Registry) error

// Runtime bundles what a process needs before it builds any object.
type Runtime struct {
	Config   *config.Config
	Log      *zap.Logger
	Registry *class.Registry
}

// Open loads the config at cfgPath, builds the logger and registry, runs
// every register func in order, then checks the classes against the
// configured manifest, if any.
func Open(cfgPath string, register ...RegisterFunc) (*Runtime, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return Start(cfg, register...)
}

// Start is Open for an already loaded config.
func Start(cfg *config.Config, register ...RegisterFunc) (*Runtime, error) {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	reg := class.NewRegistry(cfg.Registry, log)
	for _, fn := range register {
		if err := fn(reg); err != nil {
			return nil, fmt.Errorf("register classes: %w", err)
		}
	}
	log.Info("classes registered", zap.Int("count", len(reg.Classes())))

	if cfg.Registry.Manifest != "" {
		m, err := schema.LoadManifest(cfg.Registry.Manifest)
		if err != nil {
			return nil, err
		}
		if err := reg.Verify(m.Descriptors()); err != nil {
			return nil, fmt.Errorf("verify %s: %w", cfg.Registry.Manifest, err)
		}
		log.Info("class manifest verified",
			zap.String("manifest", cfg.Registry.Manifest),
			zap.Int("classes", m.Count()),
		)
	}

	return &Runtime{Config: cfg, Log: log, Registry: reg}, nil
}

// Close flushes the logger.
func (rt *Runtime) Close() {
	_ = rt.Log.Sync()
}
