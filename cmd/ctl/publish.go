package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
	"venturemind/db"
	"venturemind/internal/auth"
	"venturemind/internal/config"
	"venturemind/internal/repository"
	"venturemind/internal/service"
	"venturemind/pkg/channel"

	"github.com/spf13/cobra"
)

func parseTarget(name string) (service.Target, error) {
	if name == "" || name == "auto" {
		return service.TargetByPlatform, nil
	}
	kind, err := channel.ParseKind(name)
	if err != nil {
		return service.Target{}, err
	}
	return service.TargetChannel(kind), nil
}

func newDispatcher(cfg config.Config, conn *sql.DB) *service.Dispatcher {
	backends := channel.NewRegistry(
		channel.NewInstagramClient(cfg.ChannelTimeout),
		channel.NewLinkedInClient(cfg.LinkedInAuthorURN, cfg.ChannelTimeout),
		channel.NewWebhookClient(cfg.ChannelTimeout),
		channel.NewChatClient(cfg.ChatWebhookURL, cfg.ChannelTimeout),
	)
	return service.NewDispatcher(
		repository.NewContentRepository(conn),
		repository.NewProfileRepository(conn),
		backends,
		slog.Default(),
	)
}

func newPublishCmd() *cobra.Command {
	var (
		ownerID string
		adID    string
		target  string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an ad to a channel",
		Long:  "Publishes an ad to instagram, linkedin, webhook or chat. \"auto\" picks the channel from the ad's platform.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTarget(target)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			conn, err := db.Connect(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer conn.Close()

			ad, err := newDispatcher(cfg, conn).Publish(cmd.Context(), ownerID, adID, t)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ad %s posted at %s\n", ad.ID, ad.PostedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "owner of the ad")
	cmd.Flags().StringVar(&adID, "ad", "", "ad id")
	cmd.Flags().StringVarP(&target, "channel", "c", "auto", "instagram, linkedin, webhook, chat or auto")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("ad")
	return cmd
}

func newApproveCmd() *cobra.Command {
	var ownerID, adID string

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve a draft ad",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			conn, err := db.Connect(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer conn.Close()

			ad, err := newDispatcher(cfg, conn).Approve(cmd.Context(), ownerID, adID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ad %s is %s\n", ad.ID, ad.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "owner of the ad")
	cmd.Flags().StringVar(&adID, "ad", "", "ad id")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("ad")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		ownerID string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("AUTH_JWT_SECRET is not set")
			}

			token, err := auth.IssueToken([]byte(cfg.JWTSecret), ownerID, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "subject of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.MarkFlagRequired("owner")
	return cmd
}
