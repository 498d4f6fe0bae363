package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/lintang-b-s/text-summarizer/pkg/analyzer"
	"github.com/lintang-b-s/text-summarizer/pkg/concurrent"
	"github.com/lintang-b-s/text-summarizer/pkg/morph"
	"github.com/lintang-b-s/text-summarizer/pkg/stoplist"
	"github.com/lintang-b-s/text-summarizer/pkg/summarizer"

	"github.com/k0kubun/go-ansi"
	"github.com/klauspost/compress/gzip"
	"github.com/schollz/progressbar/v3"
)

var (
	summaryStrength = flag.Float64("strength", 0.5, "salience threshold a sentence must reach to enter the summary")
	minSupport      = flag.Float64("sup", summarizer.DEFAULT_MIN_LCM_SUPPORT, "minimum relative itemset support")
	minNgram        = flag.Int("minn", summarizer.DEFAULT_MIN_NGRAM_SIZE, "smallest n-gram size")
	maxNgram        = flag.Int("maxn", summarizer.DEFAULT_MAX_NGRAM_SIZE, "largest n-gram size")
	stoplistPath    = flag.String("stoplist", "", "ignore-lemma list, one lemma per line (.gz supported)")
	workers         = flag.Int("workers", runtime.NumCPU(), "number of documents summarized concurrently")
)

type summarizeJob struct {
	path string
}

type summarizeResult struct {
	path   string
	output string
	err    error
}

func main() {
	flag.Parse()

	// document paths from argv, or one per line on stdin
	paths := flag.Args()
	if len(paths) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			path := strings.TrimSpace(scanner.Text())
			if path != "" {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) == 0 {
		log.Fatal("no document paths given")
	}

	config := summarizer.Config{
		MinLCMSupport: *minSupport,
		MinNgramSize:  *minNgram,
		MaxNgramSize:  *maxNgram,
	}
	if *stoplistPath != "" {
		ignoreLemmas, err := stoplist.FromFile(*stoplistPath)
		if err != nil {
			log.Fatal(err)
		}
		config.IgnoreLemmas = ignoreLemmas
	}

	sm, err := summarizer.New(config)
	if err != nil {
		log.Fatal(err)
	}
	textAnalyzer := analyzer.New()

	fmt.Println("")
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Summarizing documents..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	jobs := make([]summarizeJob, len(paths))
	for i, path := range paths {
		jobs[i] = summarizeJob{path: path}
	}

	summarizeDoc := func(job summarizeJob) summarizeResult {
		text, err := readDocument(job.path)
		if err != nil {
			return summarizeResult{path: job.path, err: err}
		}

		sentences := textAnalyzer.Analyze(text)
		if len(sentences) == 0 {
			return summarizeResult{path: job.path, err: fmt.Errorf("document %s contains no sentences", job.path)}
		}

		summary, err := sm.GetSummary(sentences)
		if err != nil {
			return summarizeResult{path: job.path, err: err}
		}

		return summarizeResult{path: job.path, output: formatSummary(sentences, summary, *summaryStrength)}
	}

	ff := concurrent.NewFanInFanOut[summarizeJob, summarizeResult](len(jobs))
	go ff.GeneratePipeline(jobs)
	outs := ff.FanOut(*workers, summarizeDoc)

	err = ff.FanIn(func(resChan <-chan summarizeResult) error {
		for res := range resChan {
			bar.Add(1)
			if res.err != nil {
				return res.err
			}
			fmt.Printf("\n\n==== %s ====\n%s", res.path, res.output)
		}
		return nil
	}, outs...)
	if err != nil {
		log.Fatal(err)
	}
}

func readDocument(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return "", err
		}
		defer gzReader.Close()
		reader = gzReader
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func formatSummary(sentences []morph.Sentence, summary *summarizer.Summary, strength float64) string {
	var sb strings.Builder

	sb.WriteString("relevant itemsets:\n")
	for _, itemset := range summary.RelevantItemsets {
		fmt.Fprintf(&sb, "  %.4f  %s\n", itemset.Score, itemset.Text)
	}

	sb.WriteString("\nrelevant keywords:\n")
	for _, keyword := range summary.RelevantKeywords {
		fmt.Fprintf(&sb, "  %.4f  %s\n", keyword.Score, keyword.Keyword)
	}

	fmt.Fprintf(&sb, "\nsummary (strength %.2f):\n", strength)
	for _, idx := range summary.SelectSentenceIndices(strength) {
		fmt.Fprintf(&sb, "  [%.4f] %s\n", summary.SalienceScores[idx], sentences[idx].Text())
	}

	return sb.String()
}
