package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kbsu-phonlab/tempo-pipeline/config"
	"github.com/kbsu-phonlab/tempo-pipeline/pipeline"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "tempo",
		Short: "Vowel-duration statistics for the Russian/Kabardian emotion corpus",
		Long: `tempo merges the vowel-duration measurement sheets of the three
language variants (monolingual Russian, bilingual Russian, Kabardian),
labels every vowel with the utterance emotion and its positional zone,
and prints the grouped mean/SD tables plus the pivot for the article.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if lvl, err := log.ParseLevel(cfg.Pipeline.LogLvl); err == nil {
				log.SetLevel(lvl)
			}
			return pipeline.New(cfg, cmd.OutOrStdout()).Run()
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to yaml config (default tempo.yaml)")
	return cmd
}
