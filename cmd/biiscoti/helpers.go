package main

import (
	"context"
	"fmt"

	"github.com/aphfiwiwi/biiscoti/internal/auth"
	"github.com/aphfiwiwi/biiscoti/internal/config"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
	"github.com/spf13/viper"
)

// loadConfig reads the typed configuration from viper.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// initRegistry opens the store registry in the configured data directory.
func initRegistry() (*storage.Registry, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	reg, err := storage.NewRegistry(cfg.Data.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	return reg, cfg, nil
}

// initAccounts builds the account service on top of reg.
func initAccounts(ctx context.Context, reg *storage.Registry, cfg *config.Config) (*shop.Accounts, error) {
	creds, err := reg.Credentials(ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.SessionTTL)
	if err != nil {
		return nil, err
	}
	return shop.NewAccounts(creds, tokens), nil
}

// listingsFor resolves a category argument and opens its table.
func listingsFor(ctx context.Context, reg *storage.Registry, name string) (*storage.Table[model.Listing], model.Category, error) {
	c, err := model.ParseCategory(name)
	if err != nil {
		return nil, "", err
	}
	table, err := reg.Listings(ctx, c)
	if err != nil {
		return nil, "", err
	}
	return table, c, nil
}
