package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/service"
)

type opener func(ctx context.Context) (service.Refunder, func(), error)

func newRootCmd(open opener, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "refundctl",
		Short:         "Operate on refunds without going through the HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(showCmd(open))
	rootCmd.AddCommand(processCmd(open))
	rootCmd.AddCommand(resetCmd(open))
	rootCmd.AddCommand(cancelCmd(open))

	return rootCmd
}

// refundAction opens the services, runs fn for the refund id in args[0]
// and prints the result.
func refundAction(open opener, fn func(ctx context.Context, svc service.Refunder, id int64) (*models.Refund, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseRefundID(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		svc, closeFn, err := open(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		refund, err := fn(ctx, svc, id)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		return printRefund(cmd.OutOrStdout(), refund, asJSON)
	}
}

func showCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [refund-id]",
		Short: "Show a refund",
		Args:  cobra.ExactArgs(1),
		RunE: refundAction(open, func(ctx context.Context, svc service.Refunder, id int64) (*models.Refund, error) {
			return svc.GetRefund(ctx, id)
		}),
	}
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func processCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [refund-id]",
		Short: "Process a PENDING refund through the payment gateway",
		Args:  cobra.ExactArgs(1),
		RunE: refundAction(open, func(ctx context.Context, svc service.Refunder, id int64) (*models.Refund, error) {
			return svc.ProcessRefund(ctx, id, nil)
		}),
	}
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func resetCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [refund-id]",
		Short: "Move a FAILED refund back to PENDING",
		Args:  cobra.ExactArgs(1),
		RunE: refundAction(open, func(ctx context.Context, svc service.Refunder, id int64) (*models.Refund, error) {
			return svc.ResetRefund(ctx, id)
		}),
	}
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func cancelCmd(open opener) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "cancel [refund-id]",
		Short: "Cancel a refund that has not completed",
		Args:  cobra.ExactArgs(1),
		RunE: refundAction(open, func(ctx context.Context, svc service.Refunder, id int64) (*models.Refund, error) {
			return svc.CancelRefund(ctx, id, reason)
		}),
	}
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Cancellation reason (required)")
	_ = cmd.MarkFlagRequired("reason") //nolint:errcheck // flag is defined above
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func parseRefundID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid refund id %q: must be a positive integer", arg)
	}
	return id, nil
}

func printRefund(w io.Writer, refund *models.Refund, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(refund)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Number:\t%s\n", refund.RefundNumber)
	fmt.Fprintf(tw, "Status:\t%s\n", refund.Status)
	fmt.Fprintf(tw, "Order:\t%d\n", refund.OrderID)
	fmt.Fprintf(tw, "Amount:\t%d %s\n", refund.Amount, refund.Currency)
	fmt.Fprintf(tw, "Reason:\t%s\n", refund.Reason)
	fmt.Fprintf(tw, "Details:\t%s\n", refund.ReasonDetails)
	if refund.ExternalRefundID != nil {
		fmt.Fprintf(tw, "Gateway refund:\t%s\n", *refund.ExternalRefundID)
	}
	if refund.SettledAt != nil {
		fmt.Fprintf(tw, "Settled:\t%s\n", refund.SettledAt.Format("2006-01-02 15:04:05 MST"))
	}
	return tw.Flush()
}
