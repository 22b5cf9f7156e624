package main

import (
	"github.com/philipparndt/qrstl/pkg/wifi"
	"github.com/spf13/cobra"
)

var (
	wifiSSID     string
	wifiSecurity string
	wifiPassword string
	wifiHidden   bool
)

var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Generate a printable QR tag for joining a WiFi network",
	Long: `Build the WIFI: join payload from network credentials, encode it as a
QR code and write the printable tag as an STL file. Scanning the printed
tag with a phone camera joins the network.`,
	RunE: runWifi,
}

func init() {
	rootCmd.AddCommand(wifiCmd)

	wifiCmd.Flags().StringVar(&wifiSSID, "ssid", "", "network name")
	wifiCmd.MarkFlagRequired("ssid")
	wifiCmd.Flags().StringVar(&wifiSecurity, "security", string(wifi.DefaultSecurity),
		"security scheme (WPA, WEP or none)")
	wifiCmd.Flags().StringVar(&wifiPassword, "password", "", "network password")
	wifiCmd.Flags().BoolVar(&wifiHidden, "hidden", false,
		"network does not broadcast its SSID")

	addTagFlags(wifiCmd)
}

func runWifi(cmd *cobra.Command, args []string) error {
	security, err := wifi.ParseSecurity(wifiSecurity)
	if err != nil {
		return err
	}

	network := wifi.Network{
		SSID:     wifiSSID,
		Security: security,
		Password: wifiPassword,
		Hidden:   wifiHidden,
	}
	return generateTag(cmd, network.Payload())
}
