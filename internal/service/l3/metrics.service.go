package l3_service

import (
	"fmt"
	"math"
	"tradesim/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

type SimulationMetrics struct {
	StartValue       decimal.Decimal
	EndValue         decimal.Decimal
	TotalReturn      float64
	AnnualizedReturn float64
	AnnualizedStdev  float64
	MaxDrawdown      float64
}

// CalculateMetrics summarizes a run's daily total values. loop restarts
// make dates jump backwards, so time is measured in simulated trading
// days rather than calendar dates
func CalculateMetrics(history []domain.PortfolioValue) (*SimulationMetrics, error) {
	if len(history) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 days of history")
	}

	values := []float64{}
	for _, h := range history {
		values = append(values, h.TotalValue.InexactFloat64())
	}

	returns := []float64{}
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (values[i]-values[i-1])/values[i-1])
	}

	stdev := 0.0
	if len(returns) > 1 {
		var err error
		stdev, err = stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate stdev: %w", err)
		}
	}

	drawdowns := []float64{}
	peak := values[0]
	for _, v := range values {
		peak = math.Max(peak, v)
		if peak > 0 {
			drawdowns = append(drawdowns, (peak-v)/peak)
		}
	}
	maxDrawdown, err := stats.Max(drawdowns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate max drawdown: %w", err)
	}

	startValue := history[0].TotalValue
	endValue := history[len(history)-1].TotalValue
	totalReturn := 0.0
	annualizedReturn := 0.0
	if startValue.IsPositive() {
		ratio := endValue.Div(startValue).InexactFloat64()
		totalReturn = (ratio - 1) * 100
		numYears := float64(len(returns)) / tradingDaysPerYear
		annualizedReturn = (math.Pow(ratio, 1/numYears) - 1) * 100
	}

	return &SimulationMetrics{
		StartValue:       startValue,
		EndValue:         endValue,
		TotalReturn:      totalReturn,
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  stdev * math.Sqrt(tradingDaysPerYear) * 100,
		MaxDrawdown:      maxDrawdown * 100,
	}, nil
}
