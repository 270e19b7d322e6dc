package compat

import (
	"fmt"

	"github.com/tidelock/plog"
)

// Builder provides a flexible way to create configured logger adapters for
// gnet, fasthttp and fiber
// It can use an existing *plog.Logger instance or create a new one from a *plog.Config
type Builder struct {
	logger *plog.Logger
	logCfg *plog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// Recommended for applications that already have a central logger instance
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *plog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("plog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *plog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*plog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing logger was provided, so we use it
	if b.logger != nil {
		return b.logger, nil
	}

	// Create a new logger instance
	l := plog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = plog.DefaultConfig()
	}

	// Apply the configuration
	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildFiber creates a fiber adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(l, opts...), nil
}

// GetLogger returns the underlying *plog.Logger instance
// If a logger has not been provided or created yet, it will be initialized
func (b *Builder) GetLogger() (*plog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
// The following demonstrates how to share one logger between gnet and
// fasthttp servers writing to the same file
//
//	// 1. Create and configure application's main logger
//	appLogger := plog.NewLogger()
//	logCfg := plog.DefaultConfig()
//	logCfg.Level = plog.LevelDebug
//	logCfg.FilePath = "/var/log/app.log"
//	logCfg.LockPath = "/var/log/app.lock"
//	if err := appLogger.ApplyConfig(logCfg); err != nil {
//		panic(fmt.Sprintf("failed to configure logger: %v", err))
//	}
//
//	// 2. Create a builder and provide the existing logger
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	// The adapter is passed directly into the gnet options
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	// The adapter is assigned directly to the server's Logger field
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
