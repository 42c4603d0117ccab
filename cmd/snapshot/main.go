package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"courseboard/internal/catalog"
	"courseboard/internal/config"
	"courseboard/internal/export"
	"courseboard/internal/imagecheck"
	"courseboard/internal/sftpclient"
)

func main() {
	var (
		outPath     = flag.String("out", "COURSE-CATALOG.csv", "output csv path")
		checkImages = flag.Bool("check-images", false, "probe every course image url and report broken ones")
		uploadSFTP  = flag.Bool("sftp", false, "upload the generated CSV via SFTP")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer rootCancel()

	cfg := config.Load()

	// asegura dir de salida
	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := context.WithTimeout(rootCtx, cfg.FetchTimeout())
	courses, err := catalog.New(cfg.CoursesURL).List(ctx)
	cancel()
	if err != nil {
		log.Fatalf("catalog fetch error: %v", err)
	}
	fmt.Printf("fetched %d courses from %s\n", len(courses), cfg.CoursesURL)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := export.WriteCatalogCSV(f, courses); err != nil {
		f.Close()
		log.Fatalf("csv write error: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d rows)\n", *outPath, len(courses))

	if *checkImages {
		results := imagecheck.Check(rootCtx, courses, imagecheck.Options{
			MaxWorkers: cfg.ImageCheckWorkers,
		})
		broken := imagecheck.Broken(results)
		for _, r := range broken {
			log.Printf("WARN: broken image for %s: %s", r.CourseID, describeResult(r))
		}
		fmt.Printf("image check: %d ok, %d broken\n", len(results)-len(broken), len(broken))
	}

	if *uploadSFTP {
		sftpCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}
		remoteName := filepath.Base(*outPath)
		if err := sftpclient.Upload(rootCtx, sftpCfg, *outPath, remoteName); err != nil {
			log.Fatalf("sftp upload error: %v", err)
		}
		fmt.Printf("uploaded %s to %s:%s\n", remoteName, sftpCfg.Host, sftpCfg.RemoteDir)
	}
}

func describeResult(r imagecheck.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("url=%q err=%v", r.URL, r.Err)
	}
	return fmt.Sprintf("url=%q status=%d", r.URL, r.Status)
}
