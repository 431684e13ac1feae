/**
 * Copyright 2026-present The E-Station Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package main

import (
	"context"
	"flag"
	"fmt"

	"e-station-go/internal/account"
	"e-station-go/internal/common"
	"e-station-go/internal/config"
	"e-station-go/internal/models"

	"go.uber.org/zap"
)

type accountFlags struct {
	name     string
	email    string
	password string
	confirm  string
}

func printUser(title string, user *models.User) {
	common.PrintHeader(title, common.DefaultWidth)
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Email: %s\n", user.Email)
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()
}

func run(ctx context.Context, accounts *account.Service, action string, f accountFlags) error {
	switch action {
	case "register":
		user, err := accounts.Register(ctx, account.RegisterParams{
			Name:            f.name,
			Email:           f.email,
			Password:        f.password,
			ConfirmPassword: f.confirm,
		})
		if err != nil {
			return err
		}
		printUser("ACCOUNT CREATED", user)

	case "login":
		if err := accounts.Login(ctx, f.email, f.password); err != nil {
			return err
		}
		fmt.Println("✓ Logged in")

	case "logout":
		if err := accounts.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("✓ Logged out")

	case "profile":
		user, err := accounts.Profile(ctx)
		if err != nil {
			return err
		}
		loggedIn, err := accounts.IsAuthenticated(ctx)
		if err != nil {
			return err
		}
		printUser("PROFILE", user)
		fmt.Printf("Session: %v\n", loggedIn)

	case "update":
		user, err := accounts.UpdateProfile(ctx, f.name, f.email)
		if err != nil {
			return err
		}
		printUser("PROFILE UPDATED", user)

	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	actionFlag := flag.String("action", "profile", "One of register, login, logout, profile, update")
	var f accountFlags
	flag.StringVar(&f.name, "name", "", "Full name (register, update)")
	flag.StringVar(&f.email, "email", "", "E-mail address (register, login, update)")
	flag.StringVar(&f.password, "password", "", "Password (register, login)")
	flag.StringVar(&f.confirm, "confirm", "", "Password confirmation (register)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	if err := run(ctx, services.Accounts, *actionFlag, f); err != nil {
		common.Fail(logger, "Account action failed", err, services.Close)
	}
}
