package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/moonvest/investd/internal/app/api/server"
	"github.com/moonvest/investd/internal/app/repo"
	"github.com/moonvest/investd/internal/app/service/earnings"
	"github.com/moonvest/investd/internal/app/service/network"
	"github.com/moonvest/investd/internal/app/service/subscription"
	"github.com/moonvest/investd/internal/app/service/transaction"
	"github.com/moonvest/investd/internal/app/service/user"
	"github.com/moonvest/investd/internal/platform/db"
	"github.com/moonvest/investd/internal/platform/telegram"
	"github.com/moonvest/investd/pkg/config"
	"github.com/moonvest/investd/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	repo.Module,
	telegram.Module,
	earnings.Module,
	subscription.Module,
	transaction.Module,
	user.Module,
	network.Module,
	server.Module,
)
