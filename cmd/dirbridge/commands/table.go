package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TremoloSecurity/directory-ldap-api/bridge"
	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// mappingRow is one row of the error mapping table.
type mappingRow struct {
	DomainKind     string `json:"domain_kind"`
	ResultCode     *int   `json:"result_code,omitempty"`
	NamingKind     string `json:"naming_kind"`
	Classification string `json:"classification"`
}

func mappingRows() []mappingRow {
	kinds := ldap.Kinds()
	rows := make([]mappingRow, 0, len(kinds))
	for _, kind := range kinds {
		mapped := bridge.MapKind(kind)
		row := mappingRow{
			DomainKind:     kind.String(),
			NamingKind:     string(mapped),
			Classification: string(naming.DefaultClassification(mapped)),
		}
		if code, ok := ldap.ResultCodeForKind(kind); ok {
			c := int(code)
			row.ResultCode = &c
		}
		rows = append(rows, row)
	}
	return rows
}

func newTableCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the error mapping table",
		Long: `Show how every LDAP error kind maps onto a naming error kind,
together with the LDAP result code behind it and the classification of
the resulting naming error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := mappingRows()
			if e.format == FormatJSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				code := "-"
				if row.ResultCode != nil {
					code = strconv.Itoa(*row.ResultCode)
				}
				cells = append(cells, []string{row.DomainKind, code, row.NamingKind, row.Classification})
			}
			printTable(cmd.OutOrStdout(), []string{"Domain Kind", "Result Code", "Naming Kind", "Classification"}, cells)
			return nil
		},
	}
}
