package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sporadisk/mylog"
	"github.com/sporadisk/mylog/analyzer"
	"github.com/sporadisk/mylog/client/terminal"
	"github.com/sporadisk/mylog/config"
	"github.com/sporadisk/mylog/report"
)

var (
	confPath      string
	reportPath    string
	longOutput    bool
	sortOutput    bool
	useNow        bool
	watchMode     bool
	ignoreMissing bool
	staleLimit    float64
	refreshTime   int

	rootCmd = &cobra.Command{
		Use:   "mylog [paths...]",
		Short: "Show useful information about one or more .mylog files",
		Long: `mylog validates, gap-fills and summarizes personal activity logs.

Each argument is either 'today', 'yesterday', a number k (meaning k days
before today) or a path to a .mylog file. The default is 'today'.

Examples:
  mylog                         # analyze today's log
  mylog yesterday --sort        # yesterday, largest buckets first
  mylog 0 1 2 3 4 5 6           # the past week, with a summary
  mylog --use-now --watch       # live view of the running day`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&confPath, "config", "", "Path to config file")
	rootCmd.Flags().StringVarP(&reportPath, "report-path", "r", "",
		"Report output path. Default is <logDir>/report.html")
	rootCmd.Flags().BoolVarP(&longOutput, "long", "l", false,
		"Print a per-day breakdown even when multiple days are passed")
	rootCmd.Flags().BoolVar(&sortOutput, "sort", false,
		"Reverse sort summary rows on duration")
	rootCmd.Flags().BoolVar(&useNow, "use-now", false,
		"Use the current time as the end of an unfinished last activity")
	rootCmd.Flags().Float64Var(&staleLimit, "stale-limit", 0,
		"Error if the log is staler than this many minutes (0 disables)")
	rootCmd.Flags().IntVar(&refreshTime, "refresh-time", 0,
		"HTML page refresh rate in seconds; no refresh if not specified")
	rootCmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false,
		"Don't raise errors for missing or empty files")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Keep running and re-analyze on every write to the log file")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(confPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if reportPath != "" {
		conf.ReportPath = reportPath
	}

	output := &terminal.Client{
		Conf:            conf,
		Sort:            sortOutput,
		MinLabelMinutes: minLabelMinutes(conf),
	}
	err = output.Init()
	if err != nil {
		return fmt.Errorf("terminal.Client.Init: %w", err)
	}

	reportWriter := &report.Writer{Conf: conf, RefreshTime: refreshTime}
	err = reportWriter.Init()
	if err != nil {
		return fmt.Errorf("report.Writer.Init: %w", err)
	}

	var publisher analyzer.Publisher
	if conf.Publisher != nil {
		publisher, err = analyzer.LoadPublisher(conf.Publisher)
		if err != nil {
			return fmt.Errorf("Error loading publisher: %w", err)
		}
	}

	a := &analyzer.Analyzer{
		Conf:          conf,
		Output:        output,
		Report:        reportWriter,
		Publisher:     publisher,
		UseNow:        useNow,
		StaleLimit:    time.Duration(staleLimit * float64(time.Minute)),
		Long:          longOutput,
		IgnoreMissing: ignoreMissing,
	}
	err = a.Init()
	if err != nil {
		return fmt.Errorf("analyzer.Init: %w", err)
	}

	paths := resolvePaths(args, conf.LogDir)

	err = a.Run(paths)
	if err != nil {
		return err
	}

	if watchMode {
		if len(paths) != 1 {
			return fmt.Errorf("--watch works with exactly one log file, got %d", len(paths))
		}

		subscriber, err := mylog.NewFileSubscriber(paths[0], a.Parser)
		if err != nil {
			return fmt.Errorf("mylog.NewFileSubscriber: %w", err)
		}

		return subscriber.Subscribe(a)
	}

	return nil
}

// resolvePaths turns path words into concrete file paths. 'today',
// 'yesterday' and bare day counts resolve inside the configured log
// directory; anything else is taken literally.
func resolvePaths(args []string, logDir string) []string {
	if len(args) == 0 {
		args = []string{"today"}
	}

	now := time.Now()
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == "today":
			paths = append(paths, dayPath(logDir, now))
		case arg == "yesterday":
			paths = append(paths, dayPath(logDir, now.AddDate(0, 0, -1)))
		default:
			daysAgo, err := strconv.Atoi(arg)
			if err == nil && daysAgo >= 0 {
				paths = append(paths, dayPath(logDir, now.AddDate(0, 0, -daysAgo)))
			} else {
				paths = append(paths, arg)
			}
		}
	}
	return paths
}

func dayPath(logDir string, day time.Time) string {
	return filepath.Join(logDir, day.Format("2006-01-02")+".mylog")
}

func minLabelMinutes(conf *config.Config) int {
	if conf.Output == nil || conf.Output.Params == nil {
		return 0
	}

	raw, ok := conf.Output.Params["minLabelMinutes"]
	if !ok {
		return 0
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return minutes
}
