package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gramdiff/internal"
	"gramdiff/internal/config"
	"gramdiff/internal/pipeline"
	"gramdiff/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "analyze":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		followers := fs.String("followers", "", "comma-separated followers export files")
		following := fs.String("following", "", "comma-separated following export files")
		out := fs.String("out", "", "optional output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*followers) == "" || strings.TrimSpace(*following) == "" {
			must(fmt.Errorf("--followers and --following are required"))
		}

		followerFiles, err := readFiles(*followers)
		must(err)
		followingFiles, err := readFiles(*following)
		must(err)

		svc := pipeline.NewProcessingService(db, cfg)
		res, err := svc.Analyze(followerFiles, followingFiles)
		must(err)

		printCategory("followers", res.Followers)
		printCategory("following", res.Following)

		if res.Followers.Failed || res.Following.Failed {
			fmt.Println("analysis incomplete: at least one category failed to load, diff skipped")
			os.Exit(1)
		}

		fmt.Printf("not following back (%d):\n", len(res.NotFollowingBack))
		for _, u := range res.NotFollowingBack {
			fmt.Printf("  %s\n", u)
		}
		fmt.Printf("run recorded id=%d traceId=%s\n", res.RunID, res.TraceID)

		if strings.TrimSpace(*out) != "" {
			rows := pipeline.BuildReportRows(res.Followers.Usernames, res.Following.Usernames)
			must(pipeline.ExportReportToXLSX(rows, *out))
			fmt.Printf("exported %d rows to %s\n", len(rows), *out)
		}
	case "parse":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "export file path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		blob, err := os.ReadFile(*input)
		must(err)

		svc := pipeline.NewProcessingService(db, cfg)
		res, err := svc.Aggregator().ParseFile(internal.FileRecord{Name: filepath.Base(*input), RawText: string(blob)})
		must(err)

		fmt.Printf("kind=%s usernames=%d\n", res.Kind, len(res.Usernames))
		for _, u := range res.Usernames {
			fmt.Printf("  %s\n", u)
		}
		for _, w := range res.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
	case "history":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", cfg.HistoryLimit, "max runs to list")
		_ = fs.Parse(os.Args[2:])

		runs, err := db.ListRuns(*limit)
		must(err)
		for _, run := range runs {
			fmt.Printf("run id=%d traceId=%s createdAt=%s followers=%d following=%d notFollowingBack=%d warnings=%d\n",
				run.ID, run.TraceID, run.CreatedAt, len(run.Followers), len(run.Following), len(run.NotFollowingBack), len(run.Warnings))
		}
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		runID := fs.Int("runId", 0, "stored run id")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *runID == 0 {
			must(fmt.Errorf("--runId is required"))
		}

		run, err := db.GetRun(*runID)
		must(err)
		if run == nil {
			must(fmt.Errorf("no run with id=%d", *runID))
		}

		outputPath := *out
		if strings.TrimSpace(outputPath) == "" {
			outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("run_%d.xlsx", run.ID))
		}

		rows := pipeline.BuildReportRows(run.Followers, run.Following)
		must(pipeline.ExportReportToXLSX(rows, outputPath))
		fmt.Printf("exported %d rows to %s\n", len(rows), outputPath)
	default:
		usage()
		os.Exit(1)
	}
}

func readFiles(list string) ([]internal.FileRecord, error) {
	files := []internal.FileRecord{}
	for _, path := range strings.Split(list, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, internal.FileRecord{Name: filepath.Base(path), RawText: string(blob)})
	}
	return files, nil
}

func printCategory(label string, res internal.CategoryResult) {
	status := "ok"
	if res.Failed {
		status = "failed"
	}
	fmt.Printf("%s: %d usernames (%s)\n", label, len(res.Usernames), status)
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func usage() {
	fmt.Println(`usage: gramdiff <command> [flags]

commands:
  analyze      --followers a.json,b.html --following c.json [--out report.xlsx]
  parse        --input file
  history      [--limit N]
  export:xlsx  --runId N [--out path]`)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
