package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/tmeadon/nsgflows/pkg/auth"
	"github.com/tmeadon/nsgflows/pkg/azure"
	"github.com/tmeadon/nsgflows/pkg/config"
	"github.com/tmeadon/nsgflows/pkg/flowwriter"
	"github.com/tmeadon/nsgflows/pkg/logblobfinder"
	"github.com/tmeadon/nsgflows/pkg/logger"
)

var (
	cli struct {
		AccountName      string `required:"" name:"accountName" help:"Storage account holding the flow logs. List your accounts with: az storage account list -o table"`
		AccountId        string `name:"accountId" help:"(Optional) Resource ID of the storage account, used to look up the key with your Azure CLI login when ${env_key} is not set"`
		Endpoint         string `name:"endpoint" help:"(Optional) Blob service URL, defaults to https://<accountName>.blob.core.windows.net/"`
		DisplayLB        bool   `name:"displayLB" help:"Display flows generated by the Azure load balancer"`
		DisplayAllowed   bool   `name:"displayAllowed" help:"Display flows allowed by the NSGs as well as denied ones"`
		DisplayDirection string `name:"displayDirection" default:"in" help:"Display flows in a specific direction: in, out or both"`
		DisplayHours     int    `name:"displayHours" default:"1" help:"Number of most recent hourly blobs to read per NSG"`
		Verbose          bool   `name:"verbose" help:"Print diagnostic messages"`
		SkipMalformed    bool   `name:"skipMalformed" help:"Skip blobs that cannot be decoded instead of stopping"`
		Output           string `name:"output" default:"text" help:"Console output format: text or table"`
		Quiet            bool   `short:"q" help:"(Optional) Don't print flows to console"`
		File             string `short:"f" help:"(Optional) File path to write flows to in CSV format"`
		Overwrite        bool   `help:"(Optional) Overwrite file if already exists"`
	}
)

var ErrNoOutput = errors.New("nothing to write flows to - remove --quiet or add --file")

func Run() {
	ctx := kong.Parse(&cli,
		kong.Name("nsgflows"),
		kong.Description("Print the latest NSG flow logs in a storage account."),
		kong.UsageOnError(),
		kong.Vars{"env_key": config.AccountKeyEnvVar},
	)

	cfg, err := config.Load(config.Config{
		AccountName:    cli.AccountName,
		AccountId:      cli.AccountId,
		Endpoint:       cli.Endpoint,
		DisplayLB:      cli.DisplayLB,
		DisplayAllowed: cli.DisplayAllowed,
		Direction:      cli.DisplayDirection,
		LookbackCount:  cli.DisplayHours,
		Verbose:        cli.Verbose,
		SkipMalformed:  cli.SkipMalformed,
		Output:         cli.Output,
		Quiet:          cli.Quiet,
		File:           cli.File,
		Overwrite:      cli.Overwrite,
	})
	ctx.FatalIfErrorf(err)

	log := logger.New(os.Stdout, cfg.Verbose)
	ctx.FatalIfErrorf(run(context.Background(), cfg, log))
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	log.Debug().Str("account", cfg.AccountName).Msg("storage account")

	key, err := getAccountKey(ctx, cfg)
	if err != nil {
		return err
	}

	getter, err := azure.NewAzureStorageBlobGetter(ctx, cfg.AccountName, key, cfg.Endpoint)
	if err != nil {
		return err
	}

	writers, closeWriters, err := initWriterGroup(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer closeWriters()

	log.Debug().
		Bool("displayLB", cfg.DisplayLB).
		Str("displayDirection", cfg.Direction).
		Int("displayHours", cfg.LookbackCount).
		Bool("displayOnlyDrops", !cfg.DisplayAllowed).
		Msg("display variables")

	r := &reporter{
		finder:        logblobfinder.NewLogBlobFinder(getter, log),
		source:        &azureBlobSource{ctx: ctx, getter: getter},
		writers:       writers,
		log:           log,
		lookbackCount: cfg.LookbackCount,
		skipMalformed: cfg.SkipMalformed,
	}

	if !cfg.Verbose {
		s := spinner.New(spinner.CharSets[43], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Prefix = "listing flow log blobs...  "
		r.progress = s
	}

	return r.run()
}

func getAccountKey(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.AccountKey != "" {
		return cfg.AccountKey, nil
	}

	id, err := azure.ParseStorageAccountId(cfg.AccountId)
	if err != nil {
		return "", err
	}

	if !strings.EqualFold(id.Name, cfg.AccountName) {
		return "", fmt.Errorf("%w: --accountId refers to storage account %v, not %v", azure.ErrAccountMismatch, id.Name, cfg.AccountName)
	}

	cred, err := auth.GetCredential()
	if err != nil {
		return "", err
	}

	return azure.NewStorageKeyGetter(ctx, cred).GetAccountKey(id)
}

// initWriterGroup returns the writers for cfg and a func closing any files
// they write to.
func initWriterGroup(cfg *config.Config, stdout io.Writer) (*flowwriter.WriterGroup, func(), error) {
	writers := flowwriter.NewWriterGroup()
	writers.AddFilter(flowwriter.NewDisplayFilter(cfg.DisplayAllowed, cfg.Direction, cfg.DisplayLB))

	if !cfg.Quiet {
		if cfg.Output == "table" {
			writers.AddWriter(flowwriter.NewConsoleWriter(stdout))
		} else {
			writers.AddWriter(flowwriter.NewLineWriter(stdout))
		}
	}

	file, err := addCsvWriter(cfg.File, cfg.Overwrite, writers)
	if err != nil {
		return nil, nil, err
	}

	if writers.Len() == 0 {
		return nil, nil, ErrNoOutput
	}

	closeFn := func() {
		if file != nil {
			file.Close()
		}
	}

	return writers, closeFn, nil
}

func addCsvWriter(path string, overwrite bool, wg *flowwriter.WriterGroup) (*os.File, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return nil, fmt.Errorf("file already exists at path %v - add --overwrite or specify a different filepath, see command help for details", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %v: %w", path, err)
	}

	csvWriter, err := flowwriter.NewCsvFileWriter(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create csv file writer: %w", err)
	}

	wg.AddWriter(csvWriter)
	return file, nil
}
