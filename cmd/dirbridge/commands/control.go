package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	goldap "github.com/go-ldap/ldap/v3"
	"github.com/spf13/cobra"

	"github.com/TremoloSecurity/directory-ldap-api/bridge"
	"github.com/TremoloSecurity/directory-ldap-api/codec"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// controlResult describes one control round trip.
type controlResult struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Critical    bool   `json:"critical"`
	Value       string `json:"value,omitempty"`
	Decoded     string `json:"decoded"`
	Stable      bool   `json:"stable"`
}

// roundTripControl decodes control into its go-ldap form with c and
// encodes it back.
func roundTripControl(c bridge.ControlCodec, control naming.Control) (*controlResult, error) {
	decoded, err := bridge.UnwrapControls(c, []naming.Control{control})
	if err != nil {
		return nil, err
	}
	encoded, err := bridge.WrapControls(c, decoded)
	if err != nil {
		return nil, err
	}

	description, ok := goldap.ControlTypeMap[control.ID]
	if !ok {
		description = "unknown"
	}

	back := encoded[0]
	return &controlResult{
		ID:          control.ID,
		Description: description,
		Critical:    control.Critical,
		Value:       hex.EncodeToString(control.Value),
		Decoded:     decoded[0].String(),
		Stable: back.ID == control.ID &&
			back.Critical == control.Critical &&
			bytes.Equal(back.Value, control.Value),
	}, nil
}

func newControlCmd(e *env) *cobra.Command {
	var (
		critical bool
		value    string
	)

	cmd := &cobra.Command{
		Use:   "control <oid>",
		Short: "Decode a control and encode it back",
		Example: `  dirbridge control 2.16.840.1.113730.3.4.2 --critical
  dirbridge control 1.2.840.113556.1.4.319 --value 30050201000400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			control := naming.Control{ID: args[0], Critical: critical}
			if value != "" {
				raw, err := hex.DecodeString(value)
				if err != nil {
					return fmt.Errorf("invalid control value: %w", err)
				}
				control.Value = raw
			}

			result, err := roundTripControl(codec.New(), control)
			if err != nil {
				return err
			}
			e.logger.Debug("control converted", "id", result.ID, "stable", result.Stable)

			if e.format == FormatJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printPairs(cmd.OutOrStdout(), [][2]string{
				{"ID", result.ID},
				{"Description", result.Description},
				{"Critical", strconv.FormatBool(result.Critical)},
				{"Value", result.Value},
				{"Decoded", result.Decoded},
				{"Stable", strconv.FormatBool(result.Stable)},
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&critical, "critical", false, "Mark the control as critical")
	cmd.Flags().StringVar(&value, "value", "", "Hex-encoded BER control value")
	return cmd
}
