package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TremoloSecurity/directory-ldap-api/bridge"
	"github.com/TremoloSecurity/directory-ldap-api/ldap"
)

// nameResult describes one name round trip.
type nameResult struct {
	Input      string   `json:"input"`
	Dn         string   `json:"dn"`
	Name       string   `json:"name"`
	Components []string `json:"components"`
	RoundTrip  string   `json:"round_trip"`
	Stable     bool     `json:"stable"`
}

func convertName(t *bridge.Translator, input string) (*nameResult, error) {
	dn, err := ldap.ParseDn(input)
	if err != nil {
		return nil, bridge.Wrap(err)
	}

	name, err := t.ToName(dn)
	if err != nil {
		return nil, err
	}

	back, err := t.ToDn(name)
	if err != nil {
		return nil, err
	}

	return &nameResult{
		Input:      input,
		Dn:         dn.String(),
		Name:       name.String(),
		Components: name.RDNs(),
		RoundTrip:  back.String(),
		Stable:     back.Equal(dn) && back.String() == dn.String(),
	}, nil
}

func newNameCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "name <dn>",
		Short: "Convert a distinguished name to a naming name and back",
		Example: `  dirbridge name "cn=test,dc=example,dc=com"
  dirbridge name "cn=Smith\, John,ou=people,dc=example,dc=com" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := bridge.NewTranslator(bridge.WithLogger(e.logger))
			result, err := convertName(t, args[0])
			if err != nil {
				return err
			}
			e.logger.Debug("name converted", "dn", result.Dn, "components", len(result.Components))

			if e.format == FormatJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			pairs := [][2]string{
				{"Input", result.Input},
				{"Dn", result.Dn},
				{"Name", result.Name},
				{"Components", strconv.Itoa(len(result.Components))},
			}
			// Components are listed root first, matching naming.Name.Get.
			for i := len(result.Components) - 1; i >= 0; i-- {
				idx := len(result.Components) - 1 - i
				pairs = append(pairs, [2]string{"  [" + strconv.Itoa(idx) + "]", result.Components[i]})
			}
			pairs = append(pairs,
				[2]string{"Round Trip", result.RoundTrip},
				[2]string{"Stable", strconv.FormatBool(result.Stable)},
			)
			printPairs(cmd.OutOrStdout(), pairs)
			return nil
		},
	}
}
