package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/variomics/samplesheet"
	"github.com/variomics/samplesheet/versions"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	versions.PrintToStdErr()

	var sheetPath, outPath, layoutName, versionsIn, versionsOut string
	flag.StringVar(&sheetPath, "samplesheet", "", "Path to the input samplesheet (CSV or TSV; the delimiter is detected).")
	flag.StringVar(&outPath, "out", "", "Path where the validated samplesheet will be written, always in CSV format.")
	flag.StringVar(&layoutName, "layout", "", fmt.Sprint("Samplesheet layout. If unset, the layout is detected from the header. Options include: ", samplesheet.LayoutNames()))
	flag.StringVar(&versionsIn, "versions", "", "Optional path to the upstream versions.yml artifact, forwarded unchanged.")
	flag.StringVar(&versionsOut, "versions-out", "versions.yml", "Path where the merged versions artifact will be written.")
	flag.Parse()

	if sheetPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --samplesheet")
	}

	if outPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --out")
	}

	sheetPath = ExpandHome(sheetPath)
	outPath = ExpandHome(outPath)
	versionsIn = ExpandHome(versionsIn)
	versionsOut = ExpandHome(versionsOut)

	f, err := os.Open(sheetPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	layout, rows, err := samplesheet.Read(f, layoutName)
	if err != nil {
		log.Fatalln(err)
	}

	checker := samplesheet.RowChecker{Layout: layout}
	for _, row := range rows {
		if err := checker.Check(row); err != nil {
			log.Fatalln(err)
		}
	}
	checker.RenameReplicates()

	// Initialize the Google Storage client only if the sheet points to
	// Google Storage paths.
	var client *storage.Client
Outer:
	for _, row := range checker.Rows {
		for _, pv := range row.Paths {
			if strings.HasPrefix(pv.Path, "gs://") {
				if client, err = storage.NewClient(context.Background()); err != nil {
					log.Fatalln(err)
				}
				break Outer
			}
		}
	}

	builder := samplesheet.RecordBuilder{StorageClient: client}
	records, err := builder.BuildAll(checker.Rows)
	if err != nil {
		log.Fatalln(err)
	}

	// Every row passed. Only now do any outputs get written.
	out, err := os.Create(outPath)
	if err != nil {
		log.Fatalln(err)
	}
	if err := samplesheet.Write(out, layout, checker.Rows); err != nil {
		out.Close()
		log.Fatalln(err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln(err)
	}

	artifact, err := versions.Load(versionsIn)
	if err != nil {
		log.Fatalln(err)
	}
	artifact.Add("checksamplesheet")
	if err := artifact.Write(versionsOut); err != nil {
		log.Fatalln(err)
	}

	for _, rec := range records {
		fmt.Fprintln(STDOUT, strings.Join(append([]string{rec.Meta.ID}, rec.Paths()...), "\t"))
	}

	log.Println("Validated", len(records), "samples from", sheetPath)
}
