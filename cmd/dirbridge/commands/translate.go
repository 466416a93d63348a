package commands

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	ber "github.com/go-asn1-ber/asn1-ber"
	goldap "github.com/go-ldap/ldap/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/TremoloSecurity/directory-ldap-api/bridge"
	"github.com/TremoloSecurity/directory-ldap-api/ldap"
	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

// translateOptions describes the domain error to build.
type translateOptions struct {
	kind      string
	code      int
	matched   string
	remaining string
	resolved  string
	referrals []string
	context   map[string]string
	metrics   bool
}

// translation is the printable outcome of one translation.
type translation struct {
	*naming.ErrorResponse
	Retryable     bool   `json:"retryable"`
	RootCause     string `json:"root_cause"`
	Referral      string `json:"referral,omitempty"`
	RemainingName string `json:"remaining_name,omitempty"`
	ResolvedName  string `json:"resolved_name,omitempty"`
}

// buildDomainError creates the domain error described by opts.
// A result code takes precedence over a kind name and goes through
// ldap.FromResultError, the path a live connection would take.
func buildDomainError(message string, opts translateOptions) (error, error) {
	if opts.code < -1 || opts.code > math.MaxUint16 {
		return nil, fmt.Errorf("invalid result code %d (valid: 0-%d)", opts.code, math.MaxUint16)
	}
	if opts.code >= 0 {
		code := uint16(opts.code)
		return ldap.FromResultError(&goldap.Error{
			Err:        errors.New(message),
			ResultCode: code,
			MatchedDN:  opts.matched,
			Packet:     resultPacket(code, opts.matched, message, opts.referrals),
		}), nil
	}

	kind, ok := ldap.ParseKind(opts.kind)
	if !ok {
		names := make([]string, 0, len(ldap.Kinds()))
		for _, k := range ldap.Kinds() {
			names = append(names, k.String())
		}
		return nil, fmt.Errorf("unknown error kind %q (valid: %s)", opts.kind, strings.Join(names, ", "))
	}

	var resolution []ldap.ResolutionOption
	if opts.remaining != "" {
		dn, err := ldap.ParseDn(opts.remaining)
		if err != nil {
			return nil, fmt.Errorf("remaining dn: %w", err)
		}
		resolution = append(resolution, ldap.WithRemainingDn(dn))
	}
	if opts.resolved != "" {
		dn, err := ldap.ParseDn(opts.resolved)
		if err != nil {
			return nil, fmt.Errorf("resolved dn: %w", err)
		}
		resolution = append(resolution, ldap.WithResolvedDn(dn))
	}

	switch kind {
	case ldap.KindReferral:
		return ldap.NewReferralError(message, opts.referrals, resolution...), nil
	case ldap.KindPartialResult:
		return ldap.NewPartialResultError(message, resolution...), nil
	default:
		return ldap.New(kind, message), nil
	}
}

// resultPacket builds the LDAPMessage a server would send for a failed search.
func resultPacket(code uint16, matched, message string, referrals []string) *ber.Packet {
	envelope := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "LDAP Response")
	envelope.AppendChild(ber.NewInteger(ber.ClassUniversal, ber.TypePrimitive, ber.TagInteger, int64(1), "MessageID"))

	op := ber.Encode(ber.ClassApplication, ber.TypeConstructed, ber.Tag(goldap.ApplicationSearchResultDone), nil, "Search Result Done")
	op.AppendChild(ber.NewInteger(ber.ClassUniversal, ber.TypePrimitive, ber.TagEnumerated, int64(code), "resultCode"))
	op.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, matched, "matchedDN"))
	op.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, message, "diagnosticMessage"))
	if len(referrals) > 0 {
		referral := ber.Encode(ber.ClassContext, ber.TypeConstructed, ber.Tag(3), nil, "Referral")
		for _, url := range referrals {
			referral.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, url, "URI"))
		}
		op.AppendChild(referral)
	}
	envelope.AppendChild(op)
	return envelope
}

// describe reports translated. Extra context is attached to the reported
// error only; the referral and resolution accessors read translated itself.
func describe(translated naming.NamingError, extra map[string]string) (*translation, error) {
	reported := translated
	if len(extra) > 0 {
		ctx := make(map[string]interface{}, len(extra))
		for k, v := range extra {
			ctx[k] = v
		}
		reported = naming.WithContextMap(translated, ctx)
	}

	out := &translation{
		ErrorResponse: naming.ToJSON(reported),
		Retryable:     naming.IsRetryable(reported),
	}
	if cause := naming.RootCause(reported); cause != nil {
		out.RootCause = cause.Error()
	}

	var resolution naming.Resolution
	if errors.As(translated, &resolution) {
		remaining, err := resolution.RemainingName()
		if err != nil {
			return nil, err
		}
		resolved, err := resolution.ResolvedName()
		if err != nil {
			return nil, err
		}
		out.RemainingName = remaining.String()
		out.ResolvedName = resolved.String()
	}

	var referral naming.ReferralError
	if errors.As(translated, &referral) {
		if info := referral.ReferralInfo(); info != nil {
			out.Referral = fmt.Sprint(info)
		}
	}
	return out, nil
}

func newTranslateCmd(e *env) *cobra.Command {
	opts := translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate <message>",
		Short: "Translate an LDAP error into a naming error",
		Long: `Build an LDAP error, either from a domain kind (--kind) or from an LDAP
result code (--code), and show the naming error it translates to.`,
		Example: `  dirbridge translate "dn exists" --kind EntryAlreadyExists
  dirbridge translate "moved" --kind Referral --referral ldap://east/ --remaining ou=sales,dc=example,dc=com
  dirbridge translate "no such entry" --code 32 --matched dc=example,dc=com -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domainErr, err := buildDomainError(args[0], opts)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			t := bridge.NewTranslator(
				bridge.WithLogger(e.logger),
				bridge.WithMetrics(bridge.NewMetrics(registry)),
			)

			translated := t.Wrap(domainErr)
			e.logger.Debug("error translated",
				"domain_error", domainErr,
				"kind", string(translated.Kind()))

			result, err := describe(translated, opts.context)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if e.format == FormatJSON {
				if err := printJSON(out, result); err != nil {
					return err
				}
			} else {
				pairs := [][2]string{
					{"Kind", result.Kind},
					{"Classification", result.Classification},
					{"Retryable", strconv.FormatBool(result.Retryable)},
					{"Message", result.Message},
					{"Root Cause", result.RootCause},
				}
				if result.Referral != "" {
					pairs = append(pairs, [2]string{"Referral", result.Referral})
				}
				if result.RemainingName != "" {
					pairs = append(pairs, [2]string{"Remaining Name", result.RemainingName})
				}
				if result.ResolvedName != "" {
					pairs = append(pairs, [2]string{"Resolved Name", result.ResolvedName})
				}
				keys := make([]string, 0, len(result.Context))
				for k := range result.Context {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					pairs = append(pairs, [2]string{"Context " + k, fmt.Sprint(result.Context[k])})
				}
				printPairs(out, pairs)
			}

			if opts.metrics {
				return printMetrics(cmd, registry)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", ldap.KindOther.String(), "Domain error kind")
	cmd.Flags().IntVar(&opts.code, "code", -1, "LDAP result code (overrides --kind)")
	cmd.Flags().StringVar(&opts.matched, "matched", "", "Matched DN reported with --code")
	cmd.Flags().StringVar(&opts.remaining, "remaining", "", "Remaining DN of a referral or partial result")
	cmd.Flags().StringVar(&opts.resolved, "resolved", "", "Resolved DN of a referral or partial result")
	cmd.Flags().StringArrayVar(&opts.referrals, "referral", nil, "Referral URL (repeatable)")
	cmd.Flags().StringToStringVar(&opts.context, "context", nil, "Extra context attached to the naming error (key=value)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Show the translator metrics after the translation")

	return cmd
}

func printMetrics(cmd *cobra.Command, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var rows [][]string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			rows = append(rows, []string{
				family.GetName(),
				strings.Join(labels, ","),
				fmt.Sprintf("%g", metric.GetCounter().GetValue()),
			})
		}
	}

	fmt.Fprintln(cmd.OutOrStdout())
	printTable(cmd.OutOrStdout(), []string{"Metric", "Labels", "Value"}, rows)
	return nil
}
