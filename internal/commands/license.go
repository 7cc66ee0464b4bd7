package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/logger"
	"github.com/chronodesk/chronodesk/internal/models"
)

const settingDeviceID = "device_id"

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Show and manage the license",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		license, err := store.GetLicense()
		if err != nil {
			return err
		}
		fmt.Printf("🔑 Tier: %s\n", license.Tier)
		if license.ActivatedAt != nil {
			fmt.Printf("   Activated: %s\n", *license.ActivatedAt)
		}
		if license.ExpiresAt != nil {
			fmt.Printf("   Expires:   %s\n", *license.ExpiresAt)
		}
		if license.Tier == models.TierFree {
			limits := models.LimitsForTier(license.Tier)
			fmt.Printf("\n   Free tier limits: %d categories, %d goals, %d days of analytics\n",
				*limits.MaxSessionTypes, *limits.MaxGoals, *limits.AnalyticsDays)
		}
		return nil
	}),
}

var licenseActivateCmd = &cobra.Command{
	Use:   "activate <license-key>",
	Short: "Activate a license key for this device",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		key := args[0]
		deviceID, err := ensureDeviceID()
		if err != nil {
			return err
		}
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tier, err := remote.ActivateLicense(ctx, key, deviceID, hostname)
		if err != nil {
			return fmt.Errorf("activation failed: %w", err)
		}

		now := analytics.Today()
		if err := store.SaveLicense(models.License{
			Tier:        tier,
			LicenseKey:  &key,
			ActivatedAt: &now,
		}); err != nil {
			return err
		}
		logger.Info("license activated", "tier", tier)
		fmt.Printf("✅ Activated. You are now on the %s tier.\n", tier)
		return nil
	}),
}

var licenseDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Remove the license from this device",
	RunE: withStore(func(cmd *cobra.Command, args []string) error {
		if err := store.SaveLicense(models.DefaultLicense()); err != nil {
			return err
		}
		fmt.Println("✅ License removed, back on the Free tier")
		return nil
	}),
}

// ensureDeviceID returns the stable per-install device id, minting one
// on first use
func ensureDeviceID() (string, error) {
	existing, err := store.GetSetting(settingDeviceID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return *existing, nil
	}
	id := uuid.NewString()
	if err := store.SetSetting(settingDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}

func init() {
	licenseCmd.AddCommand(licenseActivateCmd)
	licenseCmd.AddCommand(licenseDeactivateCmd)
}
