package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <number>",
		Short: "Print a number in the given style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styleName, _ := cmd.Flags().GetString("style")
			style, err := phonenumber.ParseFormat(styleName)
			if err != nil {
				return err
			}
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			s, err := eng.Format(args[0], regionFlag(cmd), style)
			if err != nil {
				return err
			}
			return render(cmd, map[string]string{"style": style.String(), "number": s},
				[]field{{style.String(), s}})
		},
	}
	cmd.Flags().StringP("style", "s", "e164", "Output style: e164, international, national, rfc3966")
	return cmd
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <number>",
		Short: "Classify a number (mobile, fixed line, toll free, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			t, err := eng.NumberType(args[0], regionFlag(cmd))
			if err != nil {
				return err
			}
			return render(cmd, map[string]any{"type": t.String(), "ordinal": int(t)},
				[]field{{"type", t}})
		},
	}
}

func newValidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <number>",
		Short: "Report whether a number is valid for its region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			ok, err := eng.IsValid(args[0], regionFlag(cmd))
			if err != nil {
				return err
			}
			return render(cmd, map[string]bool{"valid": ok}, []field{{"valid", ok}})
		},
	}
}

func newRegionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "region <calling-code>",
		Short: "Print the main region of a country calling code",
		Example: `  drphone region 60
  drphone region +1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCallingCode(args[0])
			if err != nil {
				return err
			}
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			region, err := eng.RegionCodeForCountryCode(code)
			if err != nil {
				return err
			}
			return render(cmd, map[string]any{"country_code": code, "region": region},
				[]field{{"region", region}})
		},
	}
}

func newCountryCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "country-code <region>",
		Short: "Print the country calling code of a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			code, err := eng.CountryCodeForRegion(args[0])
			if err != nil {
				return err
			}
			return render(cmd, map[string]any{"region": args[0], "country_code": code},
				[]field{{"country code", code}})
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <number>",
		Short: "Print everything known about a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			rep := analyze(eng, args[0], regionFlag(cmd))
			if rep.err != nil {
				return rep.err
			}
			return render(cmd, rep, rep.fields())
		},
	}
}

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example <region>",
		Short: "Print an example number for a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			styleName, _ := cmd.Flags().GetString("style")
			t, err := phonenumber.ParseNumberType(typeName)
			if err != nil {
				return err
			}
			style, err := phonenumber.ParseFormat(styleName)
			if err != nil {
				return err
			}
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			s, err := eng.ExampleNumber(args[0], t, style)
			if err != nil {
				return err
			}
			return render(cmd, map[string]string{"type": t.String(), "number": s},
				[]field{{t.String(), s}})
		},
	}
	cmd.Flags().StringP("type", "t", "mobile", "Number type, e.g. mobile, fixed_line, toll_free")
	cmd.Flags().StringP("style", "s", "e164", "Output style: e164, international, national, rfc3966")
	return cmd
}

func parseCallingCode(s string) (int32, error) {
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	code, err := strconv.ParseInt(s, 10, 32)
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("invalid calling code %q", s)
	}
	return int32(code), nil
}
