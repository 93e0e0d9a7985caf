package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"sales-report/internal/features/reports"
	logging "sales-report/internal/infra/log"
)

// ErrInvalidInput is returned when a menu answer is not a number. It ends
// the session; out-of-range numbers only print a warning.
var ErrInvalidInput = errors.New("invalid menu input")

// Reporter runs the reports the menu offers.
type Reporter interface {
	OrderDetails(ctx context.Context, w io.Writer, n int) error
	Chart(ctx context.Context, kind reports.Kind, m reports.Metric) (string, error)
	Dashboard(ctx context.Context, m reports.Metric) (string, error)
}

const (
	choiceDetails = 1
	choiceOrders  = 2
	choiceSales   = 3
	choiceExit    = 4

	choiceDashboard = 6
)

var (
	heading = color.New(color.FgCyan)
	warning = color.New(color.FgRed)
)

type Menu struct {
	reporter   Reporter
	in         *bufio.Reader
	out        io.Writer
	detailRows int
}

func New(reporter Reporter, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		reporter:   reporter,
		in:         bufio.NewReader(in),
		out:        out,
		detailRows: reports.DefaultDetailRows,
	}
}

// Run shows the main menu until the user exits, input ends or ctx is
// cancelled. Non-numeric input and report failures are returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(m.out, "\nShutting down...")
			return nil
		}

		m.printMain()
		choice, err := m.readChoice("Enter your choice (1-4): ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		logging.LogDebug("Menu choice", zap.Int("choice", choice))

		switch choice {
		case choiceDetails:
			err = m.reporter.OrderDetails(ctx, m.out, m.detailRows)
		case choiceOrders:
			err = m.subMenu(ctx, reports.Orders)
		case choiceSales:
			err = m.subMenu(ctx, reports.Sales)
		case choiceExit:
			fmt.Fprintln(m.out, "Exiting program...")
			return nil
		default:
			m.invalid()
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMain() {
	heading.Fprintln(m.out, "\nChoose a report:")
	fmt.Fprintln(m.out, "1. Order Details")
	fmt.Fprintln(m.out, "2. Order Details(PLOTS)")
	fmt.Fprintln(m.out, "3. Sales Details")
	fmt.Fprintln(m.out, "4. Exit")
}

// subMenu offers the five charts plus the dashboard for one metric.
func (m *Menu) subMenu(ctx context.Context, metric reports.Metric) error {
	prefix := "Sales"
	if metric == reports.Orders {
		prefix = "Total orders"
	}
	fmt.Fprintf(m.out, "1. %s by City\n", prefix)
	fmt.Fprintf(m.out, "2. %s by month\n", prefix)
	fmt.Fprintf(m.out, "3. %s by State\n", prefix)
	fmt.Fprintf(m.out, "4. %s by Product\n", prefix)
	fmt.Fprintf(m.out, "5. %s in December\n", prefix)
	fmt.Fprintf(m.out, "6. %s Dashboard\n", prefix)

	choice, err := m.readChoice("Enter your choice (1-6): ")
	if errors.Is(err, io.EOF) {
		// the main loop sees the same EOF on its next read
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case choice >= 1 && choice <= len(reports.Kinds):
		_, err = m.reporter.Chart(ctx, reports.Kinds[choice-1], metric)
	case choice == choiceDashboard:
		_, err = m.reporter.Dashboard(ctx, metric)
	default:
		m.invalid()
	}
	return err
}

func (m *Menu) invalid() {
	warning.Fprintln(m.out, "Invalid choice!")
}

// readChoice prompts and parses one integer line. io.EOF is returned as is
// when input ends before any text.
func (m *Menu) readChoice(prompt string) (int, error) {
	fmt.Fprint(m.out, prompt)

	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, err
	}

	text := strings.TrimSpace(line)
	choice, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	return choice, nil
}
