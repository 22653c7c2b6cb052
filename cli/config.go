package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/chaitanyabirla/transportcost/flow"
	"github.com/chaitanyabirla/transportcost/problem"
	"github.com/chaitanyabirla/transportcost/report"
)

// Defaults for the text inputs: the sample problem of the original form.
const (
	DefaultSupply   = "300, 400, 500"
	DefaultDemand   = "250, 350, 400, 200"
	DefaultCosts    = "8, 6, 10, 9\n9, 12, 13, 7\n14, 9, 16, 5"
	DefaultCurrency = "₹"
	DefaultFormat   = string(report.Text)
	DefaultFlow     = "dinic"
)

// Flag and configuration keys.
const (
	keyConfig       = "config"
	keyVerbose      = "verbose"
	keyFormat       = "format"
	keyInputFormat  = "input-format"
	keySupply       = "supply"
	keyDemand       = "demand"
	keyCosts        = "costs"
	keySupplyPoints = "supply-points"
	keyDemandPoints = "demand-points"
	keyBalance      = "balance"
	keyCurrency     = "currency"
	keyFlow         = "flow-algorithm"
)

// Config holds the resolved settings of one solve run.
type Config struct {
	Input        string // problem file, "-" for stdin, "" for the text inputs
	InputFormat  problem.Format
	Format       report.Format
	Supply       string
	Demand       string
	Costs        string
	SupplyPoints int
	DemandPoints int
	Balance      bool
	Currency     string
	Flow         flow.Algorithm // max-flow routine for the closed-route check
	Verbose      bool
}

// loadConfig reads every key from v (flags, then environment, then config
// file, then defaults) and validates the enumerations.
func loadConfig(v *viper.Viper, args []string) (Config, error) {
	cfg := Config{
		Supply:       v.GetString(keySupply),
		Demand:       v.GetString(keyDemand),
		Costs:        v.GetString(keyCosts),
		SupplyPoints: v.GetInt(keySupplyPoints),
		DemandPoints: v.GetInt(keyDemandPoints),
		Balance:      v.GetBool(keyBalance),
		Currency:     v.GetString(keyCurrency),
		Verbose:      v.GetBool(keyVerbose),
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	var err error
	if cfg.Format, err = report.ParseFormat(v.GetString(keyFormat)); err != nil {
		return Config{}, err
	}
	if cfg.Flow, err = flow.ParseAlgorithm(v.GetString(keyFlow)); err != nil {
		return Config{}, err
	}
	if f := v.GetString(keyInputFormat); f != "" {
		if cfg.InputFormat, err = problem.ParseFormat(f); err != nil {
			return Config{}, err
		}
	}
	if cfg.SupplyPoints < 0 || cfg.DemandPoints < 0 {
		return Config{}, fmt.Errorf("point counts must not be negative: %d, %d", cfg.SupplyPoints, cfg.DemandPoints)
	}

	return cfg, nil
}
