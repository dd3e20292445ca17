package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/vidplay/internal/config"
	"github.com/vmunix/vidplay/internal/events"
)

var errHistoryNotPersisted = errors.New("history is kept in memory only; set [history] path to a file")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show events recorded by past sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old events",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPruneCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	historyCmd.Flags().String("session", "", "Only show events from this session")
	historyCmd.Flags().String("video", "", "Only show events for this video id")
	historyCmd.Flags().Duration("since", 0, "Only show events newer than this (e.g. 24h)")

	historyPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "Delete events older than this")
}

type historyQuery struct {
	limit   int
	session string
	video   string
	since   time.Duration
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var q historyQuery
	q.limit, _ = cmd.Flags().GetInt("limit")
	q.session, _ = cmd.Flags().GetString("session")
	q.video, _ = cmd.Flags().GetString("video")
	q.since, _ = cmd.Flags().GetDuration("since")

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	return showHistory(cmd.OutOrStdout(), cfg, q, jsonOutput)
}

func openEventLog(cfg *config.Config, sessionID string) (*events.EventLog, func() error, error) {
	if !cfg.History.Enabled || cfg.History.Path == memoryDB {
		return nil, nil, errHistoryNotPersisted
	}
	db, err := openHistory(cfg.History.Path)
	if err != nil {
		return nil, nil, err
	}
	return events.NewEventLog(db, sessionID), db.Close, nil
}

func showHistory(w io.Writer, cfg *config.Config, q historyQuery, asJSON bool) error {
	log, closeDB, err := openEventLog(cfg, q.session)
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	f := events.Filter{SessionID: q.session, Limit: q.limit}
	if q.video != "" {
		f.EntityType, f.EntityID = events.EntityVideo, q.video
	}
	if q.since > 0 {
		f.Since = time.Now().Add(-q.since)
	}
	raws, err := log.Query(f)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	// Oldest first.
	slices.Reverse(raws)

	if asJSON {
		return printJSON(w, raws)
	}

	if len(raws) == 0 {
		fmt.Fprintln(w, "No events")
		return nil
	}

	fmt.Fprintf(w, "%-20s %-10s %-24s %s\n", "TIME", "SESSION", "TYPE", "ENTITY")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range raws {
		fmt.Fprintf(w, "%-20s %-10s %-24s %s/%s\n",
			e.OccurredAt.Local().Format("2006-01-02 15:04:05"),
			shortID(e.SessionID),
			e.EventType,
			e.EntityType, e.EntityID)
	}
	return nil
}

func runHistoryPruneCmd(cmd *cobra.Command, _ []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeDB, err := openEventLog(cfg, "")
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	n, err := log.Prune(olderThan)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d events\n", n)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
