// Package server exposes the analysis core over the language server
// protocol, speaking stdio. The project index is built once during
// initialization; hover requests are pure reads against it.
package server

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserv "github.com/tliron/glsp/server"

	"github.com/kls-dev/kls/internal/hover"
	"github.com/kls-dev/kls/internal/index"
	"github.com/kls-dev/kls/internal/span"
)

const name = "kls"

type Server struct {
	version string
	logger  commonlog.Logger
	handler protocol.Handler

	mu       sync.RWMutex
	resolver *hover.Resolver
}

// New configures logging and the protocol handler. verbosity follows
// commonlog conventions; logPath may be nil for stderr.
func New(version string, verbosity int, logPath *string) *Server {
	commonlog.Configure(verbosity, logPath)

	s := &Server{
		version: version,
		logger:  commonlog.GetLogger(name),
	}
	s.handler = protocol.Handler{
		Initialize:        s.initialize,
		Initialized:       s.initialized,
		Shutdown:          s.shutdown,
		SetTrace:          s.setTrace,
		TextDocumentHover: s.textDocumentHover,
	}
	return s
}

// Run serves the protocol over stdio until the client disconnects.
func (s *Server) Run() error {
	return glspserv.NewServer(&s.handler, name, false).RunStdio()
}

func (s *Server) setResolver(r *hover.Resolver) {
	s.mu.Lock()
	s.resolver = r
	s.mu.Unlock()
}

func (s *Server) getResolver() *hover.Resolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver
}

func (s *Server) initialize(glspCtx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	root := "."
	if params.RootPath != nil {
		root = *params.RootPath
	} else if params.RootURI != nil {
		root = uriToPath(string(*params.RootURI))
	}

	ix, err := index.Build(context.Background(), root)
	if err != nil {
		// Serve without an index rather than refusing the session; every
		// hover will be empty.
		s.logger.Errorf("building index for %s: %s", root, err)
	} else {
		s.setResolver(hover.New(ix))
		s.logger.Infof("indexed %d files under %s", ix.Len(), root)
	}

	capabilities := s.handler.CreateServerCapabilities()
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(glspCtx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(glspCtx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(glspCtx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentHover(glspCtx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	resolver := s.getResolver()
	if resolver == nil {
		return nil, nil
	}

	path := uriToPath(string(params.TextDocument.URI))
	pos := span.Position{Line: params.Position.Line, Column: params.Position.Character}

	contents, err := resolver.Hover(path, pos)
	if err != nil {
		var resolution *hover.ResolutionError
		if errors.As(err, &resolution) {
			// A broken declaration chain is not a server fault; surface
			// it as "no hover" and keep the reason in the log.
			s.logger.Infof("hover %s at %s: %s", path, pos, err)
			return nil, nil
		}
		s.logger.Errorf("hover %s at %s: %s", path, pos, err)
		return nil, err
	}
	if contents == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: contents,
		},
	}, nil
}

func uriToPath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}
