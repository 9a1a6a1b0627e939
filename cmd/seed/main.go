package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"finance-api/internal/dto"
	"finance-api/internal/models"
	"finance-api/internal/repository"
	"finance-api/internal/service"
	"finance-api/pkg/auth"
	"finance-api/pkg/config"
	"finance-api/pkg/logger"
	"finance-api/pkg/postgres"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

type seedAccount struct {
	name         string
	balance      string
	transactions []seedTransaction
}

type seedTransaction struct {
	amount   string
	isDebit  bool
	category models.TransactionCategory
}

var seedData = []seedAccount{
	{
		name:    "Checking",
		balance: "2500.00",
		transactions: []seedTransaction{
			{amount: "3200.00", isDebit: false, category: models.CategorySalary},
			{amount: "84.20", isDebit: true, category: models.CategoryFood},
			{amount: "45.00", isDebit: true, category: models.CategoryTransport},
			{amount: "120.75", isDebit: true, category: models.CategoryUtilities},
			{amount: "19.99", isDebit: true, category: models.CategoryEntertainment},
		},
	},
	{
		name:    "Savings",
		balance: "10000.00",
		transactions: []seedTransaction{
			{amount: "500.00", isDebit: false, category: models.CategoryTransfer},
			{amount: "12.50", isDebit: false},
		},
	},
}

func main() {
	randomPerAccount := flag.Int("random", 20, "random transactions to add per account")
	fakerSeed := flag.Int64("seed", 42, "seed for the random transaction generator")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	accountRepo := repository.NewAccountRepository(db, appLogger)
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	authService := service.NewAuthService(repository.NewUserRepository(db, appLogger), jwtManager, appLogger)
	accountService := service.NewAccountService(accountRepo, appLogger)
	txService := service.NewTransactionService(repository.NewTransactionRepository(db, appLogger), accountRepo, appLogger)

	appLogger.Info("Starting database seeding...")

	userID, err := demoUser(ctx, authService)
	if err != nil {
		appLogger.Fatal("Failed to prepare demo user", zap.Error(err))
	}

	existing, err := accountService.ListAccounts(ctx, userID)
	if err != nil {
		appLogger.Fatal("Failed to list accounts", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Demo user already has accounts, skipping", zap.Int("accounts", len(existing)))
		return
	}

	faker := gofakeit.New(*fakerSeed)

	var created int
	for _, sa := range seedData {
		account, err := accountService.CreateAccount(ctx, userID, &dto.CreateAccountRequest{
			Name:    sa.name,
			Balance: decimal.RequireFromString(sa.balance),
		})
		if err != nil {
			appLogger.Fatal("Failed to create account", zap.String("name", sa.name), zap.Error(err))
		}

		reqs := make([]*dto.CreateTransactionRequest, 0, len(sa.transactions)+*randomPerAccount)
		for _, st := range sa.transactions {
			amount := decimal.RequireFromString(st.amount)
			isDebit := st.isDebit
			req := &dto.CreateTransactionRequest{
				Amount:    &amount,
				IsDebit:   &isDebit,
				AccountID: account.ID,
			}
			if st.category != "" {
				category := st.category
				req.Category = &category
			}
			reqs = append(reqs, req)
		}
		reqs = append(reqs, randomTransactions(faker, account.ID, *randomPerAccount)...)

		for _, req := range reqs {
			if _, err := txService.CreateTransaction(ctx, userID, req); err != nil {
				appLogger.Error("Failed to create transaction", zap.Int64("account_id", account.ID), zap.Error(err))
				continue
			}
			created++
		}
	}

	appLogger.Info("Seeding completed",
		zap.String("email", demoEmail),
		zap.Int("accounts", len(seedData)),
		zap.Int("transactions", created),
	)
}

func demoUser(ctx context.Context, authService *service.AuthService) (int64, error) {
	resp, err := authService.Register(ctx, &dto.RegisterRequest{
		Username: demoUsername,
		Email:    demoEmail,
		Password: demoPassword,
	})
	if errors.Is(err, service.ErrUserExists) {
		resp, err = authService.Login(ctx, &dto.LoginRequest{Email: demoEmail, Password: demoPassword})
	}
	if err != nil {
		return 0, err
	}
	return resp.User.ID, nil
}
