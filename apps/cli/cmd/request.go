package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/apiglue/reqwrap/packages/client"
	"github.com/apiglue/reqwrap/packages/config"
	"github.com/apiglue/reqwrap/packages/debug"
	"github.com/apiglue/reqwrap/packages/engine"
)

var (
	headerFlags []string
	bodyFlag    string
	baseURLFlag string
	proxyFlag   string
	timeoutFlag string
	configFlag  string
	debugFlag   bool
	queryFlag   string
	noColorFlag bool
	includeFlag bool
)

func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, `Request header ("Key: Value"), repeatable`)
	if withBody {
		cmd.Flags().StringVarP(&bodyFlag, "data", "d", "", "Request body")
	}
	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Base URL prefixed to the request URL")
	cmd.Flags().StringVar(&proxyFlag, "proxy", "", "Proxy URL (scheme://[user:pass@]host:port)")
	cmd.Flags().StringVar(&timeoutFlag, "timeout", "", "Request timeout (e.g. 10s)")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "Report failed requests to stderr")
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Extract a value from a JSON body by path")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&includeFlag, "include", "i", false, "Print response headers")
}

func runRequest(cmd *cobra.Command, method, rawURL string) error {
	if noColorFlag {
		color.NoColor = true
	}

	cfg, eng, err := buildClientConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "config error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	reporter := debug.NewConsoleReporter(
		debug.WithWriter(cmd.ErrOrStderr()),
		debug.WithNoColor(noColorFlag),
	)

	c, err := client.New(cfg, client.WithEngine(eng), client.WithReporter(reporter))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "config error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := c.Request(ctx, rawURL, method, bodyFlag, nil, nil)
	if err != nil {
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) {
			printErrorResponse(cmd, reqErr)
			os.Exit(ExitHTTPError)
		}
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("error:"), err)
		os.Exit(ExitTransportFault)
	}

	printResponse(cmd, resp)
	return nil
}

// buildClientConfig layers file config under flag overrides and returns
// the client config plus the engine to run it with.
func buildClientConfig() (client.Config, *engine.HTTPEngine, error) {
	fileCfg, err := config.Load(configFlag)
	if err != nil {
		return client.Config{}, nil, err
	}

	overlay := &config.File{
		BaseURL: baseURLFlag,
		Headers: parseHeaderFlags(headerFlags),
	}
	if debugFlag {
		overlay.Debug = config.BoolPtr(true)
	}
	fileCfg = fileCfg.Merge(overlay)

	cfg := fileCfg.ClientConfig()

	if proxyFlag != "" {
		spec, err := parseProxyURL(proxyFlag)
		if err != nil {
			return client.Config{}, nil, err
		}
		cfg.Proxy = spec
	}

	engineOpts := []engine.Option{}
	if timeoutFlag != "" {
		d, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return client.Config{}, nil, fmt.Errorf("invalid timeout %q: %w", timeoutFlag, err)
		}
		engineOpts = append(engineOpts, engine.WithTimeout(d))
	} else if fileCfg.Timeout > 0 {
		engineOpts = append(engineOpts, engine.WithTimeout(time.Duration(fileCfg.Timeout)*time.Millisecond))
	}

	return cfg, engine.New(engineOpts...), nil
}

// parseHeaderFlags turns repeated "Key: Value" flags into a header map.
func parseHeaderFlags(flags []string) map[string]string {
	if len(flags) == 0 {
		return nil
	}
	headers := make(map[string]string, len(flags))
	for _, f := range flags {
		key, value, found := strings.Cut(f, ":")
		if !found {
			continue
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers
}

// parseProxyURL converts a proxy URL string into a ProxySpec.
func parseProxyURL(raw string) (*client.ProxySpec, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("proxy URL must have a host")
	}

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy port %q", p)
		}
	}

	spec := &client.ProxySpec{
		Host:   u.Hostname(),
		Port:   port,
		Scheme: u.Scheme,
	}
	if u.User != nil {
		spec.Username = u.User.Username()
		spec.Password, _ = u.User.Password()
	}
	return spec, nil
}

func printResponse(cmd *cobra.Command, resp *client.Response) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", green(fmt.Sprintf("%d", resp.StatusCode)))

	if includeFlag {
		for k, v := range resp.Headers {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", cyan(k), v)
		}
	}

	if queryFlag != "" {
		result := resp.Get(queryFlag)
		if !result.Exists() {
			fmt.Fprintf(cmd.ErrOrStderr(), "no value at path %q\n", queryFlag)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		return
	}

	if resp.Raw() != "" {
		fmt.Fprintln(cmd.OutOrStdout(), resp.Raw())
	}
}

func printErrorResponse(cmd *cobra.Command, reqErr *client.RequestError) {
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", red(fmt.Sprintf("%d", reqErr.Response.Status)))

	if includeFlag {
		for k, v := range reqErr.Response.Headers {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", k, v)
		}
	}

	if raw, ok := reqErr.Response.Data.(string); ok {
		if raw != "" {
			fmt.Fprintln(cmd.OutOrStdout(), raw)
		}
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", reqErr.Response.Data)
}
