package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	decideReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

// Reviewer очередь заявок и решения по ним
type Reviewer interface {
	Review(ctx context.Context, withSummary bool) ([]decideReservationUC.PendingItem, error)
	Execute(ctx context.Context, req *decideReservationUC.Request) (*decideReservationUC.Response, error)
}

// console интерактивный обход pending заявок, старые первыми
type console struct {
	reviewer    Reviewer
	in          *bufio.Scanner
	out         io.Writer
	withSummary bool
}

func newConsole(reviewer Reviewer, in io.Reader, out io.Writer, withSummary bool) *console {
	return &console{
		reviewer:    reviewer,
		in:          bufio.NewScanner(in),
		out:         out,
		withSummary: withSummary,
	}
}

func (c *console) run(ctx context.Context) error {
	items, err := c.reviewer.Review(ctx, c.withSummary)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(c.out, "No pending reservation requests.")
		return nil
	}

	fmt.Fprintf(c.out, "--- %d pending request(s) ---\n\n", len(items))
	for _, item := range items {
		c.print(item)
		if !c.decide(ctx, item) {
			// ввод закончился
			break
		}
	}

	fmt.Fprintln(c.out, "Done.")
	return nil
}

func (c *console) print(item decideReservationUC.PendingItem) {
	req := item.Reservation
	fmt.Fprintf(c.out, "Request ID: %d\n", req.ID)
	fmt.Fprintf(c.out, "  %s | Car: %s\n", req.FullName(), req.CarNumber)
	fmt.Fprintf(c.out, "  Period: %s → %s\n", req.PeriodStart, req.PeriodEnd)
	fmt.Fprintf(c.out, "  Submitted: %s\n", req.CreatedAt.UTC().Format(time.RFC3339))
	if c.withSummary {
		if item.SummaryErr != nil {
			fmt.Fprintf(c.out, "  (Summary unavailable: %v)\n", item.SummaryErr)
		} else {
			fmt.Fprintf(c.out, "  Summary: %s\n", item.Summary)
		}
	}
	fmt.Fprintln(c.out)
}

// decide спрашивает действие, пока не получит a, r или s. false - ввод закончился.
func (c *console) decide(ctx context.Context, item decideReservationUC.PendingItem) bool {
	for {
		answer, ok := c.prompt("  [a]pprove / [r]efuse / [s]kip? ")
		if !ok {
			return false
		}

		action, valid := decideReservationUC.ParseAction(answer)
		if !valid {
			fmt.Fprintln(c.out, "  Enter a, r, or s.")
			continue
		}

		req := &decideReservationUC.Request{ReservationID: item.Reservation.ID, Action: action}
		if action == decideReservationUC.ActionRefuse {
			comment, ok := c.prompt("  Optional comment: ")
			if !ok {
				return false
			}
			req.Comment = comment
		}

		resp, err := c.reviewer.Execute(ctx, req)
		if err != nil {
			fmt.Fprintf(c.out, "  → Failed: %v\n\n", err)
			return true
		}

		switch {
		case action == decideReservationUC.ActionSkip:
			fmt.Fprintln(c.out, "  Skipped.")
		case action == decideReservationUC.ActionRefuse:
			fmt.Fprintln(c.out, "  → Refused.")
		case resp.Warning != "":
			fmt.Fprintf(c.out, "  → %s\n", resp.Warning)
		default:
			fmt.Fprintf(c.out, "  → Approved and written to confirmed reservations (%s).\n", resp.Delivery.Path)
		}
		fmt.Fprintln(c.out)
		return true
	}
}

func (c *console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
