package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/vidplay/internal/catalog"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List the videos in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runVideosCmd,
}

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmd.Flags().String("tag", "", "Only list videos with this tag")
}

type videoJSON struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func runVideosCmd(cmd *cobra.Command, _ []string) error {
	tag, _ := cmd.Flags().GetString("tag")

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return printVideos(cmd.OutOrStdout(), cat, tag, jsonOutput)
}

func printVideos(w io.Writer, cat *catalog.Catalog, tag string, asJSON bool) error {
	var videos []*catalog.Video
	for _, v := range cat.Videos() {
		if tag == "" || v.HasTag(tag) {
			videos = append(videos, v)
		}
	}

	if asJSON {
		out := make([]videoJSON, 0, len(videos))
		for _, v := range videos {
			out = append(out, videoJSON{ID: v.ID(), Title: v.Title(), Tags: v.Tags()})
		}
		return printJSON(w, out)
	}

	if len(videos) == 0 {
		fmt.Fprintln(w, "No videos")
		return nil
	}

	fmt.Fprintf(w, "%-28s %-24s %s\n", "ID", "TITLE", "TAGS")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, v := range videos {
		fmt.Fprintf(w, "%-28s %-24s %s\n", v.ID(), truncate(v.Title(), 24), strings.Join(v.Tags(), ", "))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
