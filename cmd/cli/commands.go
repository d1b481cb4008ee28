package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	eventID     string
	seasonID    string
	divisionKey string
	roundKey    string
	view        string
	msgpack     bool
)

func init() {
	bundleCmd.Flags().StringVar(&eventID, "event", "", "Event id")
	bundleCmd.Flags().StringVar(&seasonID, "season", "", "Season id")
	bundleCmd.Flags().StringVar(&divisionKey, "division", "", "Division key")
	bundleCmd.Flags().StringVar(&roundKey, "round", "", "Round component id")
	bundleCmd.Flags().StringVar(&view, "view", "", "Leaderboard view (scoped includes sub-leaderboards)")
	bundleCmd.Flags().BoolVar(&msgpack, "msgpack", false, "Request a msgpack encoded response")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/public/health", nil)
	},
}

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Fetch the campaigns bundle for a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		setIfNotEmpty(params, "event_id", eventID)
		setIfNotEmpty(params, "season_id", seasonID)
		setIfNotEmpty(params, "division_key", divisionKey)
		setIfNotEmpty(params, "round_key", roundKey)
		setIfNotEmpty(params, "view", view)
		return performGetRequest("/api/public/campaigns_bundle", params)
	},
}

var teamCmd = &cobra.Command{
	Use:   "team <team_id>",
	Short: "Fetch the bundle of a single team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/public/team_bundle", url.Values{"team_id": {args[0]}})
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <player_id|query>",
	Short: "Fetch a player bundle by id, or by the best name match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/public/player_bundle", url.Values{"player_id": {args[0]}, "q": {args[0]}})
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func performGetRequest(endpoint string, params url.Values) error {
	target := host + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if msgpack {
		req.Header.Set("Accept", "application/msgpack")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	if msgpack {
		fmt.Printf("%d bytes of msgpack\n", len(body))
		return nil
	}
	fmt.Println(string(body))

	return nil
}
