package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/db"
	"github.com/chronodesk/chronodesk/internal/models"
)

var (
	invClient   string
	invEmail    string
	invDue      string
	invTaxRate  float64
	invNotes    string
	invSessions []uint
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Create and manage invoices",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := requireInvoices(); err != nil {
			return err
		}
		return listInvoices()
	}),
}

// requireInvoices gates the invoice commands behind the Pro tier
func requireInvoices() error {
	license, err := store.GetLicense()
	if err != nil {
		return err
	}
	return db.RequireFeature(models.LimitsForTier(license.Tier).HasInvoices, "Invoicing")
}

var invoiceListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List invoices",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := requireInvoices(); err != nil {
			return err
		}
		return listInvoices()
	}),
}

func listInvoices() error {
	invoices, err := store.ListInvoices()
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		fmt.Println("📭 No invoices yet. Create one with 'chronodesk invoice create'")
		return nil
	}
	fmt.Printf("🧾 %d invoice(s):\n\n", len(invoices))
	for _, inv := range invoices {
		fmt.Printf("  #%d  %s  %-8s %s  $%.2f  due %s\n",
			inv.ID, inv.InvoiceNumber, inv.Status, inv.ClientName, inv.Total, inv.DueDate)
	}
	return nil
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice from uninvoiced sessions",
	Example: `  chronodesk invoice create --client "Acme Corp" --due 2026-09-30 --sessions 3,4,7
  chronodesk invoice create --client "Acme Corp" --due 2026-09-30 --sessions 3 --tax 19`,
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := requireInvoices(); err != nil {
			return err
		}
		if _, err := analytics.ParseDate(invDue); err != nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", invDue)
		}

		invoice, err := store.CreateInvoice(models.NewInvoice{
			ClientName:  invClient,
			ClientEmail: invEmail,
			DueDate:     invDue,
			TaxRate:     invTaxRate,
			Notes:       invNotes,
			SessionIDs:  invSessions,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Created %s for %s: $%.2f", invoice.InvoiceNumber, invoice.ClientName, invoice.Total)
		if invoice.TaxAmount > 0 {
			fmt.Printf(" (incl. $%.2f tax)", invoice.TaxAmount)
		}
		fmt.Printf(", %d item(s)\n", len(invoice.Items))
		return nil
	}),
}

var invoiceStatusCmd = &cobra.Command{
	Use:   "status <invoice-id> <status>",
	Short: "Set an invoice's status (Draft, Sent, Paid, Overdue)",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := requireInvoices(); err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid invoice id %q", args[0])
		}
		status, err := models.ParseInvoiceStatus(args[1])
		if err != nil {
			return err
		}
		if err := store.UpdateInvoiceStatus(uint(id), status); err != nil {
			return err
		}
		fmt.Printf("✅ Invoice #%d is now %s\n", id, status)
		return nil
	}),
}

var invoiceRmCmd = &cobra.Command{
	Use:   "rm <invoice-id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := requireInvoices(); err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid invoice id %q", args[0])
		}
		invoice, err := store.GetInvoice(uint(id))
		if err != nil {
			return err
		}
		if err := store.DeleteInvoice(invoice.ID); err != nil {
			return err
		}
		fmt.Printf("🗑️  Deleted invoice %s\n", invoice.InvoiceNumber)
		return nil
	}),
}

var invoicePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List sessions not yet on any invoice",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := requireInvoices(); err != nil {
			return err
		}
		sessions, err := store.UninvoicedSessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("✅ Every session is invoiced")
			return nil
		}
		fmt.Printf("💵 %d uninvoiced session(s):\n\n", len(sessions))
		for _, s := range sessions {
			printSession(s)
		}
		return nil
	}),
}

func init() {
	invoiceCreateCmd.Flags().StringVar(&invClient, "client", "", "Client name")
	invoiceCreateCmd.Flags().StringVar(&invEmail, "email", "", "Client email")
	invoiceCreateCmd.Flags().StringVar(&invDue, "due", "", "Due date (YYYY-MM-DD)")
	invoiceCreateCmd.Flags().Float64Var(&invTaxRate, "tax", 0, "Tax rate in percent")
	invoiceCreateCmd.Flags().StringVar(&invNotes, "notes", "", "Invoice notes")
	invoiceCreateCmd.Flags().UintSliceVar(&invSessions, "sessions", nil, "Session ids to bill")
	invoiceCreateCmd.MarkFlagRequired("client")
	invoiceCreateCmd.MarkFlagRequired("due")
	invoiceCreateCmd.MarkFlagRequired("sessions")

	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceStatusCmd)
	invoiceCmd.AddCommand(invoiceRmCmd)
	invoiceCmd.AddCommand(invoicePendingCmd)
}
