package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/protrack-dev/protrack/backend/internal/config"
	"github.com/protrack-dev/protrack/backend/internal/domain"
	"github.com/protrack-dev/protrack/backend/internal/repository"
	"github.com/protrack-dev/protrack/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: random employees, 2: random projects, 3: random tasks)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if n <= 0 {
		logger.Error("invalid record count", slog.Int("n", n))
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		logger.Error("no operation given")
	case 1:
		cnt := n
		for i := 0; i < n; i++ {
			employee, err := utils.GenerateRandomEmployee(cfg.Seed.Password)
			if err != nil {
				logger.Error("unable to generate employee", slog.String("error", err.Error()))
				continue
			}
			if err := repo.CreateEmployee(employee); err != nil {
				logger.Error("unable to insert employee", slog.String("error", err.Error()))
				continue
			}
			cnt--
		}
		logger.Info("employees inserted", slog.Int("count", n-cnt))
	case 2:
		managers := pickByRole(logger, repo, domain.RoleManager)
		if len(managers) == 0 {
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			project := utils.GenerateRandomProject(managers[rand.Intn(len(managers))])
			if err := repo.CreateProject(project); err != nil {
				logger.Error("unable to insert project", slog.String("error", err.Error()))
				continue
			}
			cnt--
		}
		logger.Info("projects inserted", slog.Int("count", n-cnt))
	case 3:
		managers := pickByRole(logger, repo, domain.RoleManager)
		staff := pickByRole(logger, repo, domain.RoleStaff)
		if len(managers) == 0 || len(staff) == 0 {
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			manager := managers[rand.Intn(len(managers))]
			projects, err := repo.GetProjectsByManager(manager)
			if err != nil || len(projects) == 0 {
				logger.Error("manager has no projects to attach tasks to", slog.Int64("manager", manager.ID))
				continue
			}
			task := utils.GenerateRandomTask(projects[rand.Intn(len(projects))], staff[rand.Intn(len(staff))])
			if err := repo.CreateTask(task); err != nil {
				logger.Error("unable to insert task", slog.String("error", err.Error()))
				continue
			}
			cnt--
		}
		logger.Info("tasks inserted", slog.Int("count", n-cnt))
	default:
		logger.Error("unknown operation", slog.Int("op", op))
	}
}

func pickByRole(logger *slog.Logger, repo *repository.Repository, role domain.Role) []*domain.Employee {
	employees, err := repo.GetAllEmployees()
	if err != nil {
		logger.Error("unable to list employees", slog.String("error", err.Error()))
		return nil
	}

	picked := make([]*domain.Employee, 0)
	for _, employee := range employees {
		if employee.Role == role {
			picked = append(picked, employee)
		}
	}

	if len(picked) == 0 {
		logger.Error("no employees with required role, seed employees first", slog.String("role", string(role)))
	}
	return picked
}
