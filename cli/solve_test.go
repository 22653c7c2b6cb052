package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chaitanyabirla/transportcost/cli"
	"github.com/chaitanyabirla/transportcost/flow"
	"github.com/chaitanyabirla/transportcost/problem"
	"github.com/chaitanyabirla/transportcost/report"
	"github.com/chaitanyabirla/transportcost/vam"
)

// run executes the command tree with args and returns stdout, stderr and
// the command error.
func run(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

var _ = Describe("vogel solve", func() {
	Context("with the default text inputs", func() {
		It("solves the sample problem", func() {
			out, _, err := run("", "solve")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Input Data Confirmation"))
			Expect(out).To(ContainSubstring("Supply: [300 400 500]"))
			Expect(out).To(HaveSuffix("The Basic Feasible Solution is: ₹10700\n"))
		})
	})

	Context("with text flags", func() {
		It("uses the given problem and currency", func() {
			out, _, err := run("", "solve",
				"--supply", "20, 30, 50",
				"--demand", "10, 40, 30, 20",
				"--costs", "8, 6, 10, 9\n9, 12, 13, 7\n14, 9, 16, 5",
				"--currency", "$")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Average unit cost: $8.80"))
			Expect(out).To(HaveSuffix("The Basic Feasible Solution is: $880\n"))
		})

		It("checks declared point counts", func() {
			_, _, err := run("", "solve", "--supply-points", "2")
			Expect(errors.Is(err, problem.ErrCountMismatch)).To(BeTrue())
		})

		It("rejects an unbalanced problem", func() {
			_, _, err := run("", "solve", "--supply", "1, 2, 3")
			Expect(errors.Is(err, vam.ErrUnbalancedProblem)).To(BeTrue())
		})

		It("balances on request", func() {
			out, _, err := run("", "solve", "--supply", "300, 400, 600", "--balance", "--format", "json")
			Expect(err).NotTo(HaveOccurred())

			var plan report.Plan
			Expect(json.Unmarshal([]byte(out), &plan)).To(Succeed())
			Expect(plan.Destinations).To(HaveLen(5))
			Expect(plan.Destinations[4]).To(Equal(problem.DummyLabel))
			Expect(plan.TotalQuantity).To(Equal(1300))
		})

		It("reports parse errors with the failing input", func() {
			_, _, err := run("", "solve", "--demand", "250, abc")
			Expect(err).To(MatchError(ContainSubstring("demand")))
		})
	})

	Context("with a problem file", func() {
		It("reads YAML with labels", func() {
			out, _, err := run("", "solve", filepath.Join("testdata", "plants.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Nashik"))
			Expect(out).To(ContainSubstring("Kolkata"))
			Expect(out).To(HaveSuffix("₹880\n"))
		})

		It("reads CSV and renders CSV", func() {
			out, _, err := run("", "solve", "-o", "csv", filepath.Join("testdata", "plants.csv"))
			Expect(err).NotTo(HaveOccurred())
			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(lines[0]).To(Equal("step,from,to,quantity,unit_cost,cost"))
			Expect(lines[len(lines)-1]).To(Equal("total,,,100,8.80,880"))
		})

		It("reads stdin", func() {
			doc := `{"supply": [5, 5], "demand": [5, 5], "costs": [[1, 100], [100, 1]]}`
			out, _, err := run(doc, "solve", "-", "--input-format", "json", "--format", "yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("totalCost: 10"))
		})

		It("fails on a missing file", func() {
			_, _, err := run("", "solve", filepath.Join("testdata", "missing.yaml"))
			Expect(err).To(MatchError(ContainSubstring("missing.yaml")))
		})

		It("reports closed routes that cannot carry the demand", func() {
			doc := "supply: [5, 5]\ndemand: [5, 5]\ncosts: [[x, 1], [x, 2]]\n"
			_, _, err := run(doc, "solve", "-")
			Expect(errors.Is(err, vam.ErrInfeasible)).To(BeTrue())

			_, _, err = run(doc, "solve", "-", "--flow-algorithm", "edmonds-karp")
			Expect(errors.Is(err, vam.ErrInfeasible)).To(BeTrue())
		})
	})

	Context("configuration", func() {
		It("rejects an unknown output format", func() {
			_, _, err := run("", "solve", "--format", "pdf")
			Expect(errors.Is(err, report.ErrUnknownFormat)).To(BeTrue())
		})

		It("rejects an unknown max-flow routine", func() {
			_, _, err := run("", "solve", "--flow-algorithm", "push-relabel")
			Expect(errors.Is(err, flow.ErrUnknownAlgorithm)).To(BeTrue())
		})

		It("accepts underscores in flag names", func() {
			_, _, err := run("", "solve", "--supply_points", "3", "--demand_points", "5")
			Expect(errors.Is(err, problem.ErrCountMismatch)).To(BeTrue())
		})

		It("reads settings from the environment", func() {
			Expect(os.Setenv("VOGEL_FORMAT", "json")).To(Succeed())
			DeferCleanup(os.Unsetenv, "VOGEL_FORMAT")

			out, _, err := run("", "solve")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("{"))
		})

		It("lets flags override the environment", func() {
			Expect(os.Setenv("VOGEL_FORMAT", "json")).To(Succeed())
			DeferCleanup(os.Unsetenv, "VOGEL_FORMAT")

			out, _, err := run("", "solve", "--format", "text")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("Input Data Confirmation"))
		})

		It("reads a config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "vogel.yaml")
			cfg := "format: csv\nsupply: \"5, 5\"\ndemand: \"5, 5\"\ncosts: |\n  1, 100\n  100, 1\n"
			Expect(os.WriteFile(path, []byte(cfg), 0o600)).To(Succeed())

			out, _, err := run("", "solve", "--config", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveSuffix("total,,,10,1.00,10\n"))
		})

		It("fails on an unreadable config file", func() {
			_, _, err := run("", "solve", "--config", filepath.Join("testdata", "nope.yaml"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("logging", func() {
		It("is quiet by default", func() {
			_, stderr, err := run("", "solve")
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(BeEmpty())
		})

		It("traces every step when verbose", func() {
			_, stderr, err := run("", "solve", "--verbose")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(stderr, "allocated")).To(Equal(6))
			Expect(stderr).To(ContainSubstring("solved"))
		})

		It("traces the closed-route check when verbose", func() {
			doc := "supply: [5, 5]\ndemand: [5, 5]\ncosts: [[2, 3], [4, x]]\n"
			out, stderr, err := run(doc, "solve", "-", "--verbose", "--format", "yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("totalCost: 35"))
			Expect(stderr).To(ContainSubstring("dinic augmentation"))

			_, stderr, err = run(doc, "solve", "-", "--verbose", "--flow_algorithm", "ek")
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(ContainSubstring("edmonds-karp augmentation"))
			Expect(stderr).NotTo(ContainSubstring("dinic augmentation"))
		})
	})
})

var _ = Describe("Solve", func() {
	It("works without a command", func() {
		var out bytes.Buffer
		cfg := cli.Config{
			Supply:   "5",
			Demand:   "5",
			Costs:    "7",
			Format:   report.Text,
			Currency: "€",
		}
		Expect(cli.Solve(context.Background(), cfg, strings.NewReader(""), &out)).To(Succeed())
		Expect(out.String()).To(HaveSuffix("The Basic Feasible Solution is: €35\n"))
	})
})
