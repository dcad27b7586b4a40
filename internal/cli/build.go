// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemgraph/metrics"
	"github.com/katalvlaran/chemgraph/molecule"
)

// buildPlan is the parsed form of the build flags.
type buildPlan struct {
	name      string
	branches  []int
	bonds     []molecule.Bond
	mutations []molecule.Target
	additions []molecule.Target
	chains    []molecule.Chaining
}

var (
	buildName      string
	buildBranches  []int
	buildBonds     []string
	buildMutations []string
	buildAdditions []string
	buildChains    []string
	buildPerElem   bool
	buildJSON      bool
	buildMetrics   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build, lock and describe a molecule",
	Long: `Build a molecule and lock it with hydrogens.

Operations run in a fixed order: every --branch, then every --bond, --mutate,
--add and --chain, each in the order given. Positions and branches are 1-based.

Examples:
  chemgraph build --name cyclohexane --branch 6 --bond 1,1,6,1
  chemgraph build --branch 4 --branch 1 --bond 2,1,1,2 --mutate 3,1,Mg --mutate 4,1,Br
  chemgraph build --branch 5 --chain 4,1,S,C,B --json`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildName, "name", "", "Molecule name")
	buildCmd.Flags().IntSliceVar(&buildBranches, "branch", nil, "Carbon branch length (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildBonds, "bond", nil, "Bond pos1,branch1,pos2,branch2 (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildMutations, "mutate", nil, "Mutation pos,branch,Element (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildAdditions, "add", nil, "Added atom pos,branch,Element (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildChains, "chain", nil, "Chain pos,branch,El[,El...] (repeatable)")
	buildCmd.Flags().BoolVar(&buildPerElem, "per-element-ids", false, "Number atoms per element instead of molecule-wide")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "Output as JSON")
	buildCmd.Flags().BoolVar(&buildMetrics, "metrics", false, "Print operation counters to stderr")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	plan, err := parseBuildPlan()
	if err != nil {
		return err
	}
	table, err := loadTable()
	if err != nil {
		return err
	}
	logger, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	opts := []molecule.Option{
		molecule.WithElementTable(table),
		molecule.WithLogger(logger),
		molecule.WithObserver(collector),
	}
	if buildPerElem {
		opts = append(opts, molecule.WithIDScheme(molecule.PerElementIDs))
	}

	m, buildErr := molecule.Build(plan.name, opts, plan.steps()...)
	if buildMetrics {
		if err := writeCounters(cmd.ErrOrStderr(), reg); err != nil {
			logger.Warn("gathering metrics", slog.Any("err", err))
		}
	}
	if buildErr != nil {
		return buildErr
	}

	if buildJSON {
		return writeJSON(cmd.OutOrStdout(), m)
	}
	return writeText(cmd.OutOrStdout(), m)
}

// parseBuildPlan turns the build flags into typed tuples.
func parseBuildPlan() (buildPlan, error) {
	plan := buildPlan{name: buildName, branches: buildBranches}
	for _, s := range buildBonds {
		b, err := parseBond(s)
		if err != nil {
			return plan, fmt.Errorf("--bond: %w", err)
		}
		plan.bonds = append(plan.bonds, b)
	}
	for _, s := range buildMutations {
		t, err := parseTarget(s)
		if err != nil {
			return plan, fmt.Errorf("--mutate: %w", err)
		}
		plan.mutations = append(plan.mutations, t)
	}
	for _, s := range buildAdditions {
		t, err := parseTarget(s)
		if err != nil {
			return plan, fmt.Errorf("--add: %w", err)
		}
		plan.additions = append(plan.additions, t)
	}
	for _, s := range buildChains {
		c, err := parseChaining(s)
		if err != nil {
			return plan, fmt.Errorf("--chain: %w", err)
		}
		plan.chains = append(plan.chains, c)
	}
	return plan, nil
}

// steps lays the plan out in execution order, ending with the lock.
func (s buildPlan) steps() []molecule.Step {
	steps := []molecule.Step{molecule.Branches(s.branches...)}
	if len(s.bonds) > 0 {
		steps = append(steps, molecule.Bonds(s.bonds...))
	}
	if len(s.mutations) > 0 {
		steps = append(steps, molecule.Mutations(s.mutations...))
	}
	if len(s.additions) > 0 {
		steps = append(steps, molecule.Additions(s.additions...))
	}
	for _, c := range s.chains {
		steps = append(steps, molecule.Chain(c.Pos, c.Branch, c.Elements...))
	}
	return append(steps, molecule.Close())
}

// report is the JSON shape of a locked molecule.
type report struct {
	Name     string     `json:"name"`
	Formula  string     `json:"formula"`
	Weight   float64    `json:"molecularWeight"`
	Rings    int        `json:"rings"`
	Atoms    []string   `json:"atoms"`
	Branches [][]string `json:"branches"`
}

func newReport(m *molecule.Molecule) (report, error) {
	f, err := m.Formula()
	if err != nil {
		return report{}, err
	}
	w, err := m.MolecularWeight()
	if err != nil {
		return report{}, err
	}
	r := report{Name: m.Name(), Formula: f, Weight: w, Rings: m.Rings()}
	for _, a := range m.Atoms() {
		r.Atoms = append(r.Atoms, a.String())
	}
	for _, b := range m.Branches()[1:] {
		keys := make([]string, len(b))
		for i, k := range b {
			keys[i] = k.String()
		}
		r.Branches = append(r.Branches, keys)
	}
	return r, nil
}

func writeJSON(w io.Writer, m *molecule.Molecule) error {
	r, err := newReport(m)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, m *molecule.Molecule) error {
	r, err := newReport(m)
	if err != nil {
		return err
	}
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "Name:     %s\n", r.Name)
	}
	fmt.Fprintf(&b, "Formula:  %s\n", r.Formula)
	fmt.Fprintf(&b, "Weight:   %g\n", r.Weight)
	fmt.Fprintf(&b, "Rings:    %d\n", r.Rings)
	b.WriteString("Atoms:\n")
	for _, a := range r.Atoms {
		fmt.Fprintf(&b, "  %s\n", a)
	}
	_, err = io.WriteString(w, b.String())
	return err
}

// writeCounters prints every gathered sample as "name{labels} value".
func writeCounters(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range mfs {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
