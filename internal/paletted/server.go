package paletted

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/wsuwp/colorpalette/internal/db"
	"github.com/wsuwp/colorpalette/internal/editor"
	"github.com/wsuwp/colorpalette/internal/models"
	"github.com/wsuwp/colorpalette/internal/palette"
	"github.com/wsuwp/colorpalette/internal/render"
)

// Backend is what the server needs from the rest of the application.
type Backend struct {
	Palettes *palette.Service
	Editor   *editor.Handler
	Classes  *render.BodyClasser
	Items    editor.ItemStore
}

// Server implements PaletteServiceServer.
type Server struct {
	backend   Backend
	limiter   *RateLimiter
	logger    zerolog.Logger
	startedAt time.Time
	hostname  string
	version   string
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithVersion sets the daemon version.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// WithRateLimiter reports limiter state in GetStatus.
func WithRateLimiter(limiter *RateLimiter) ServerOption {
	return func(s *Server) {
		s.limiter = limiter
	}
}

// NewServer creates the PaletteService implementation.
func NewServer(backend Backend, logger zerolog.Logger, opts ...ServerOption) *Server {
	hostname, _ := os.Hostname()

	s := &Server{
		backend:   backend,
		logger:    logger,
		startedAt: time.Now(),
		hostname:  hostname,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping is a simple health check.
func (s *Server) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return respond(map[string]any{
		"version":   s.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// GetStatus reports daemon metadata and the current palette count.
func (s *Server) GetStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	count := 0
	if s.backend.Palettes != nil {
		count = s.backend.Palettes.Registry().Palettes().Len()
	}

	fields := map[string]any{
		"version":        s.version,
		"hostname":       s.hostname,
		"started_at":     s.startedAt.UTC().Format(time.RFC3339),
		"uptime_seconds": time.Since(s.startedAt).Seconds(),
		"palette_count":  count,
	}
	if s.limiter != nil {
		fields["rate_limit_enabled"] = s.limiter.IsEnabled()
		if global := s.limiter.GlobalStats(); global != nil {
			fields["rate_limit_denied"] = global.DeniedRequests
		}
		fields["rate_limits"] = methodStatsList(s.limiter.Stats())
	}
	return respond(fields)
}

func methodStatsList(stats []MethodStats) []any {
	sort.Slice(stats, func(i, j int) bool { return stats[i].Method < stats[j].Method })
	out := make([]any, 0, len(stats))
	for _, ms := range stats {
		out = append(out, map[string]any{
			"method":              ms.Method,
			"requests_per_second": ms.RequestsPerSec,
			"burst":               ms.BurstSize,
			"available":           ms.Available,
			"total":               ms.TotalRequests,
			"denied":              ms.DeniedRequests,
		})
	}
	return out
}

// ListPalettes returns the registry snapshot, flagging the entry an item
// resolves to when item_id is set.
func (s *Server) ListPalettes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.backend.Editor == nil {
		return nil, status.Error(codes.FailedPrecondition, "palette service is not configured")
	}

	box, err := s.backend.Editor.MetaBox(ctx, stringField(req, "item_id"))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list palettes: %v", err)
	}

	list := make([]any, 0, len(box.Options))
	for _, opt := range box.Options {
		list = append(list, map[string]any{
			"key":     opt.Key,
			"name":    opt.Name,
			"hex":     opt.Hex,
			"current": opt.Current,
		})
	}
	return respond(map[string]any{
		"current":  box.Current,
		"palettes": list,
	})
}

// AssignPalette runs the guarded save path for one item.
func (s *Server) AssignPalette(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.backend.Editor == nil {
		return nil, status.Error(codes.FailedPrecondition, "palette service is not configured")
	}

	itemID := stringField(req, "item_id")
	if itemID == "" {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}

	save := editor.SaveRequest{
		ItemID:   itemID,
		Autosave: boolField(req, "autosave"),
		Fields:   map[string]string{},
	}
	if hasField(req, "palette") {
		save.Fields[editor.FieldName] = stringField(req, "palette")
	}

	result, err := s.backend.Editor.Save(ctx, save)
	if err != nil {
		if errors.Is(err, db.ErrItemNotFound) {
			return nil, status.Errorf(codes.NotFound, "item %q not found", itemID)
		}
		s.logger.Error().Err(err).Str("item_id", itemID).Msg("assign palette failed")
		return nil, status.Errorf(codes.Internal, "assign palette: %v", err)
	}

	return respond(map[string]any{
		"outcome":  string(result.Outcome),
		"reason":   string(result.Reason),
		"item_id":  result.ItemID,
		"palette":  result.Palette,
		"previous": result.Previous,
	})
}

// ResolveClasses appends palette classes to the submitted class list.
// Lookup failures fall back to the default palette.
func (s *Server) ResolveClasses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if s.backend.Classes == nil {
		return nil, status.Error(codes.FailedPrecondition, "renderer is not configured")
	}

	target := render.Target{
		ItemID:   stringField(req, "item_id"),
		Singular: boolField(req, "singular"),
		Type:     models.ItemType(stringField(req, "type")),
		Status:   models.ItemStatus(stringField(req, "status")),
	}
	if target.ItemID != "" && target.Type == "" && s.backend.Items != nil {
		item, err := s.backend.Items.Get(ctx, target.ItemID)
		if err != nil {
			s.logger.Warn().Err(err).Str("item_id", target.ItemID).Msg("item lookup failed, using default palette")
		} else {
			target.Type = item.Type
			if target.Status == "" {
				target.Status = item.Status
			}
		}
	}

	classes := s.backend.Classes.BodyClasses(ctx, stringList(req, "classes"), target)
	return respond(map[string]any{
		"classes": anyList(classes),
	})
}

func respond(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}
