package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/congestion-router/pkg"
	"github.com/lintang-b-s/congestion-router/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	outPath      = flag.String("out", "./data/generated_traffic_data.csv", "output ledger path, a .bz2 suffix compresses the output")
	numLocations = flag.Int("locations", 50, "number of distinct locations")
	numRows      = flag.Int("rows", 1000, "number of observations")
	maxCount     = flag.Int("max_congestion", 9, "maximum congestion count per observation")
	revisitProb  = flag.Float64("revisit", 0.3, "probability an observation revisits an already seen location")
	seed         = flag.Uint64("seed", 42, "random seed")
)

// generator writes a synthetic traffic ledger: a random walk over locations where every
// observation carries a congestion count and an HH:MM time advancing through the day.
func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *numLocations < 1 || *numRows < 1 || *maxCount < 0 {
		log.Fatal("locations and rows must be positive, max_congestion non-negative")
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal("create output", zap.Error(err))
	}
	defer f.Close()

	var w io.Writer = f
	var bz *bzip2.Writer
	if strings.HasSuffix(*outPath, ".bz2") {
		bz, err = bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			log.Fatal("open bzip2 writer", zap.Error(err))
		}
		w = bz
	}
	bw := bufio.NewWriter(w)

	if err := generate(bw, rand.New(rand.NewSource(*seed)), *numLocations, *numRows, *maxCount, *revisitProb); err != nil {
		log.Fatal("generate ledger", zap.Error(err))
	}
	if err := bw.Flush(); err != nil {
		log.Fatal("flush ledger", zap.Error(err))
	}
	if bz != nil {
		if err := bz.Close(); err != nil {
			log.Fatal("close bzip2 writer", zap.Error(err))
		}
	}
	log.Info("traffic ledger generated", zap.String("path", *outPath), zap.Int("rows", *numRows),
		zap.Int("locations", *numLocations))
}

func generate(out io.Writer, rd *rand.Rand, numLocations, numRows, maxCount int, revisit float64) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{pkg.COLUMN_LOCATION, pkg.COLUMN_CONGESTION_LEVEL, pkg.COLUMN_TIME}); err != nil {
		return err
	}

	seen := make([]int, 0, numLocations)
	next := 0
	minute := 6 * 60
	for i := 0; i < numRows; i++ {
		var loc int
		if next < numLocations && (len(seen) == 0 || rd.Float64() >= revisit) {
			loc = next
			seen = append(seen, next)
			next++
		} else {
			loc = seen[rd.Intn(len(seen))]
		}

		minute = (minute + rd.Intn(5)) % (24 * 60)
		record := []string{
			locationName(loc),
			strconv.Itoa(rd.Intn(maxCount + 1)),
			fmt.Sprintf("%02d:%02d", minute/60, minute%60),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func locationName(i int) string {
	return fmt.Sprintf("Junction %03d", i+1)
}
