// Command counsel allocates a college to an applicant from their exam rank.
//
// It resolves the dataset location through an indirection file (data.txt by
// default, overridable via counsel.yaml), prompts for the applicant's name
// and rank, runs every built-in allocation strategy in fixed order and prints
// one "Result:" line per strategy followed by the rank-interval instance
// count.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/counselkit/counsel"
	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/service/input"
	"github.com/counselkit/counsel/service/meta"
	"github.com/counselkit/counsel/tracing"
)

const (
	version   = "0.1.0"
	configURL = "counsel.yaml"
)

func main() {
	ctx := context.Background()
	cfg, err := loadConfig(ctx)
	if err == nil {
		err = run(ctx, cfg, os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers counsel.yaml (when present) over the defaults.
func loadConfig(ctx context.Context) (*counsel.Config, error) {
	metaService := meta.New()
	if ok, _ := metaService.Exists(ctx, configURL); ok {
		return counsel.LoadConfig(ctx, configURL)
	}
	return counsel.DefaultConfig(), nil
}

func run(ctx context.Context, cfg *counsel.Config, in io.Reader, out io.Writer) error {
	if cfg.Tracing.Enabled {
		if err := tracing.Init("counsel", version, cfg.Tracing.OutputFile); err != nil {
			return err
		}
	}
	metaService := meta.New()

	datasetURL := cfg.DatasetURL
	if datasetURL == "" {
		resolved, err := metaService.Resolve(ctx, cfg.IndirectionURL)
		if err != nil {
			return err
		}
		datasetURL = resolved
	}
	// confirm the dataset is readable before prompting; the content is read
	// again during strategy construction
	if ok, err := metaService.Exists(ctx, datasetURL); err != nil || !ok {
		return fmt.Errorf("cannot open %v", datasetURL)
	}

	applicant, err := input.NewWithIO(in, out).ReadApplicant(ctx)
	if err != nil {
		return err
	}

	svc, err := counsel.New(ctx, counsel.WithConfig(cfg), counsel.WithDatasetURL(datasetURL))
	if err != nil {
		return err
	}
	return report(ctx, svc.Runtime(), applicant, out)
}

// report runs every strategy in fixed order and prints the results.
func report(ctx context.Context, rt *counsel.Runtime, applicant *model.Applicant, out io.Writer) error {
	for _, name := range rt.StrategyOrder() {
		result, err := rt.Allocate(ctx, name, applicant)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Result: %v\n", result)
	}
	fmt.Fprintf(out, "Total instances of RankIntervalStrategy: %v\n", rt.RankIntervalInstances())
	return nil
}
