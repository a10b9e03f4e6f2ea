package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/gowallet/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/config"
	"github.com/iho/gowallet/internal/infrastructure/postgres"
	"github.com/iho/gowallet/internal/infrastructure/redis"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API and for out-of-band customer provisioning.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Transaction commands
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(txCreateCmd(), txListCmd())

	// Balance commands
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance operations",
	}
	balanceCmd.AddCommand(balanceProvisionCmd())

	rootCmd.AddCommand(txCmd, balanceCmd, migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func txCreateCmd() *cobra.Command {
	var (
		correlationID string
		customerID    string
		amount        string
		operation     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Apply a credit or debit transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if correlationID == "" {
				correlationID = newCorrelationID()
			}

			payload := map[string]any{
				"correlation_id": correlationID,
				"customer_id":    customerID,
				"amount":         json.Number(amount),
				"operation":      strings.ToUpper(operation),
			}

			return postJSON("/transactions", payload)
		},
	}

	cmd.Flags().StringVar(&correlationID, "correlation-id", "", "Correlation ID (generated when omitted)")
	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Transaction amount")
	cmd.Flags().StringVar(&operation, "operation", "", "CREDIT or DEBIT")
	cmd.MarkFlagRequired("customer")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("operation")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		customerID string
		pageNumber int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a customer's transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/transactions/%s?pageNumber=%d&pageSize=%d", customerID, pageNumber, pageSize)
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID")
	cmd.Flags().IntVar(&pageNumber, "page-number", 0, "Zero-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", domain.DefaultPageSize, "Page size")
	cmd.MarkFlagRequired("customer")

	return cmd
}

// balanceProvisionCmd seeds a customer balance directly in the store. This is
// the provisioning path: it bypasses the API on purpose and drops any cached
// existence answer so the serving path picks the new customer up.
func balanceProvisionCmd() *cobra.Command {
	var (
		customerID string
		amount     string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a customer balance record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			initial, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			if initial.IsNegative() {
				return fmt.Errorf("initial amount must not be negative")
			}

			if customerID == "" {
				customerID = ulid.Make().String()
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
			if err != nil {
				return fmt.Errorf("failed to connect to postgres: %w", err)
			}
			defer pool.Close()

			now := time.Now().UTC()
			balanceRepo := postgresRepo.NewBalanceRepository(pool)
			if err := balanceRepo.Create(ctx, &domain.Balance{
				CustomerID: customerID,
				Amount:     initial,
				CreatedAt:  now,
				UpdatedAt:  now,
			}); err != nil {
				return fmt.Errorf("failed to create balance: %w", err)
			}

			// A stale negative cache entry would hide the new customer.
			if client, err := redis.NewClient(ctx, cfg.RedisURL); err == nil {
				defer client.Close()
				cache := redisRepo.NewCustomerCache(client, balanceRepo, nil)
				if err := cache.Invalidate(ctx, customerID); err != nil {
					fmt.Printf("Warning: failed to invalidate cache: %v\n", err)
				}
			} else {
				fmt.Printf("Warning: redis unavailable, cache not invalidated: %v\n", err)
			}

			printJSON(map[string]string{
				"customer_id": customerID,
				"balance":     initial.StringFixed(2),
			})

			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID (generated when omitted)")
	cmd.Flags().StringVar(&amount, "amount", "0", "Initial balance amount")

	return cmd
}

// migrateCmd applies or rolls back schema migrations against the configured
// database, for environments where the server's startup migration is not
// wanted.
func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Schema migration operations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
			},
		},
	)

	return cmd
}

// newCorrelationID generates a fresh correlation id for one-off CLI calls.
func newCorrelationID() string {
	return ulid.Make().String()
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Printf("Status: %d\n%s\n", resp.StatusCode, string(body))
		return nil
	}

	fmt.Printf("Status: %d\n", resp.StatusCode)
	printJSON(decoded)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request rejected with status %d", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
