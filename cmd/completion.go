package cmd

import (
	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes dp's command line for shell completion.
func Completion() *complete.Command {
	strategies := predict.Set{string(debtplan.Snowball), string(debtplan.Avalanche)}
	orders := predict.Set{
		string(debtplan.CreatedDesc),
		string(debtplan.CreatedAsc),
		string(debtplan.NameAsc),
		string(debtplan.BalanceDesc),
		string(debtplan.BalanceAsc),
	}
	terms := predict.Set{string(debtplan.AllTerms), string(debtplan.LongTerm), string(debtplan.ShortTerm)}
	topics, _ := docs.GetAllTopics()

	amount := predict.Something
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
			"debts":  predict.Files("*.json"),
			"select": predict.Something,
			"v":      predict.Nothing,
			"plain":  predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"payoff": {
				Flags: map[string]complete.Predictor{
					"debt":      predict.Something,
					"principal": amount,
					"apr":       amount,
					"payment":   amount,
					"today":     predict.Something,
					"json":      predict.Nothing,
				},
			},
			"strategy": {
				Flags: map[string]complete.Predictor{
					"strategy": strategies,
					"budget":   amount,
					"today":    predict.Something,
					"json":     predict.Nothing,
				},
			},
			"project": {
				Flags: map[string]complete.Predictor{
					"debt":      predict.Something,
					"all":       predict.Nothing,
					"principal": amount,
					"apr":       amount,
					"payment":   amount,
					"horizon":   amount,
					"every":     amount,
					"today":     predict.Something,
					"json":      predict.Nothing,
				},
			},
			"debts": {
				Flags: map[string]complete.Predictor{
					"sort": orders,
					"type": terms,
					"json": predict.Nothing,
				},
			},
			"assist": {
				Flags: map[string]complete.Predictor{
					"today": predict.Something,
				},
			},
			"topic": {
				Args: predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
