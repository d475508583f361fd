package ledger

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"go.uber.org/zap"
)

// Source is where a ledger is read from. it is read exactly once, at startup.
type Source interface {
	Load(ctx context.Context) (*Ledger, error)
	String() string
}

// CSVSource reads a csv file. files ending in .bz2 are decompressed on the fly.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) String() string {
	return "csv:" + s.Path
}

func (s *CSVSource) Load(ctx context.Context) (*Ledger, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, dataLoadErrorf(err, "open traffic data %s: %v", s.Path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(s.Path, ".bz2") {
		bz, err := bzip2.NewReader(r, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, dataLoadErrorf(err, "open bzip2 traffic data %s: %v", s.Path, err)
		}
		defer bz.Close()
		r = bz
	}

	if err := ctx.Err(); err != nil {
		return nil, dataLoadErrorf(err, "load traffic data %s: %v", s.Path, err)
	}
	return Parse(r)
}

// Load reads the ledger from src and logs its shape.
func Load(ctx context.Context, src Source, log *zap.Logger) (*Ledger, error) {
	log.Info("Loading traffic ledger...", zap.String("source", src.String()))
	l, err := src.Load(ctx)
	if err != nil {
		log.Error("failed to load traffic ledger", zap.String("source", src.String()), zap.Error(err))
		return nil, err
	}
	if l.Len() == 0 {
		log.Warn("traffic ledger has no observations, every route request will fail", zap.String("source", src.String()))
	}
	log.Info("Traffic ledger loaded.", zap.Int("observations", l.Len()), zap.Int("locations", len(l.Locations())))
	return l, nil
}

// NewSource picks the ledger source by kind ("csv" or "postgres").
func NewSource(kind, path, dsn, table, orderColumn string) (Source, error) {
	switch strings.ToLower(kind) {
	case "", "csv":
		return NewCSVSource(path), nil
	case "postgres", "postgresql":
		return NewPostgresSource(dsn, table, orderColumn), nil
	default:
		return nil, dataLoadErrorf(nil, "unknown ledger source %q, want csv or postgres", kind)
	}
}
