// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	gw2RaidsPath        = "/v2/raids"
	gw2AccountRaidsPath = "/v2/account/raids"
	gw2AccountPath      = "/v2/account"

	gw2EventTypeBoss = "Boss"
)

type gw2Raid struct {
	ID    string `json:"id"`
	Wings []struct {
		ID     string `json:"id"`
		Events []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"events"`
	} `json:"wings"`
}

type gw2Account struct {
	Name string `json:"name"`
}

type gw2Adapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewGW2Adapter constructs the HTTP/REST implementation of [GameAdapter]
// talking to adapterCfg.GW2Address.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewGW2Adapter(adapterCfg config.Adapter, logger *logger.Logger) (GameAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.GW2Address, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter gw2 address: %w", err)
	}

	return &gw2Adapter{
		client: client,
		logger: logger.WithStr("adapter", "gw2"),
	}, nil
}

// FetchCurrentRecords implements [GameAdapter]. The raid catalogue and the
// weekly clears are requested concurrently; only events of type "Boss" are
// kept.
func (g *gw2Adapter) FetchCurrentRecords(ctx context.Context, apiKey string) (models.RecordSet, error) {
	var (
		raids   []gw2Raid
		cleared []string
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		resp, err := g.client.R().
			SetContext(egCtx).
			SetQueryParam("ids", "all").
			Get(gw2RaidsPath)
		if err != nil {
			return mapTransportError("gw2 raids request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return fmt.Errorf("gw2 raids: %w", err)
		}
		if err = json.Unmarshal(resp.Body(), &raids); err != nil {
			return fmt.Errorf("gw2 raids decode: %w: %w", ErrBadResponse, err)
		}
		return nil
	})
	eg.Go(func() error {
		resp, err := g.client.R().
			SetContext(egCtx).
			SetAuthToken(apiKey).
			Get(gw2AccountRaidsPath)
		if err != nil {
			return mapTransportError("gw2 account raids request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return fmt.Errorf("gw2 account raids: %w", err)
		}
		if err = json.Unmarshal(resp.Body(), &cleared); err != nil {
			return fmt.Errorf("gw2 account raids decode: %w: %w", ErrBadResponse, err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		g.logger.Debug().Err(err).Msg("fetching current records failed")
		return models.RecordSet{}, err
	}

	achieved := make(map[string]struct{}, len(cleared))
	for _, id := range cleared {
		achieved[id] = struct{}{}
	}

	// a Caser is stateful, so one per call
	titler := cases.Title(language.English)

	var records []models.AccomplishmentRecord
	for _, raid := range raids {
		for _, wing := range raid.Wings {
			for _, event := range wing.Events {
				if event.Type != gw2EventTypeBoss {
					continue
				}
				_, ok := achieved[event.ID]
				records = append(records, models.AccomplishmentRecord{
					ID:       event.ID,
					Name:     displayName(titler, event.ID),
					Wing:     wing.ID,
					Achieved: ok,
				})
			}
		}
	}

	set := models.NewRecordSet(records...)
	g.logger.Debug().
		Int("records", set.Len()).
		Int("cleared", len(cleared)).
		Msg("fetched current records")

	return set, nil
}

// AccountName implements [GameAdapter].
func (g *gw2Adapter) AccountName(ctx context.Context, apiKey string) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		Get(gw2AccountPath)
	if err != nil {
		return "", mapTransportError("gw2 account request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("gw2 account: %w", err)
	}

	var account gw2Account
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return "", fmt.Errorf("gw2 account decode: %w: %w", ErrBadResponse, err)
	}
	if strings.TrimSpace(account.Name) == "" {
		return "", fmt.Errorf("gw2 account: %w: empty account name", ErrBadResponse)
	}

	return account.Name, nil
}

// displayName turns "qadim_the_peerless" into "Qadim The Peerless".
func displayName(titler cases.Caser, id string) string {
	return titler.String(strings.ReplaceAll(id, "_", " "))
}
