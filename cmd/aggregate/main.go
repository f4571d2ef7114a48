package main

import (
	"flag"
	"log"
	"time"

	"github.com/sirupsen/logrus"

	"geoguia/internal/config"
	"geoguia/internal/logger"
	"geoguia/internal/store"
)

// The daily analytics job. Run after midnight for yesterday, or with
// -days N to backfill a window; re-running a day overwrites its row.
func main() {
	dateArg := flag.String("date", "", "aggregate a single day (YYYY-MM-DD, default yesterday)")
	days := flag.Int("days", 0, "backfill this many trailing days instead of a single date")
	flag.Parse()

	logger.Setup()
	config.InitDB()
	s := store.New(config.DB)

	if *days > 0 {
		to := time.Now().UTC()
		from := to.AddDate(0, 0, -*days)
		rows, err := s.AggregateRange(from, to)
		if err != nil {
			log.Fatalf("backfill failed: %v", err)
		}
		logrus.WithField("days", len(rows)).Info("analytics backfill complete")
		log.Printf("aggregated %d days", len(rows))
		return
	}

	day := time.Now().UTC().AddDate(0, 0, -1)
	if *dateArg != "" {
		parsed, err := time.Parse("2006-01-02", *dateArg)
		if err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
		day = parsed
	}

	row, err := s.AggregateDay(day)
	if err != nil {
		log.Fatalf("aggregation failed: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"date":     day.Format("2006-01-02"),
		"requests": row.TotalRequests,
		"results":  row.SuccessfulResults,
	}).Info("daily analytics upserted")
	log.Printf("aggregated %s: %d requests, %d results", day.Format("2006-01-02"), row.TotalRequests, row.SuccessfulResults)
}
