package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/wlcinput/input"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the keys currently held down",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer closeServices(svc)

		keys := svc.Keyboard.CurrentKeys()
		if keys.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no keys held")
			return nil
		}

		for _, k := range keys {
			ks := svc.Keyboard.KeysymForKey(k, input.KeyModifiers{})
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", k, keyLabel(k), ks.Name())
		}
		return nil
	},
}

var keysymCmd = &cobra.Command{
	Use:   "keysym KEY",
	Short: "Translate a key to its keysym",
	Long: `Translate a key to its keysym under the given modifiers. KEY is a key name
such as a, leftshift or kp7, or an evdev key code. Prints the keysym name and
code; NoSymbol means the key has no symbol in the current keymap.`,
	Example: `  wlcinput keysym a --mods shift
  wlcinput keysym kp7 --leds num`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, mods, err := translationArgs(cmd, args)
		if err != nil {
			return err
		}

		svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer closeServices(svc)

		ks := svc.Keyboard.KeysymForKey(key, mods)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t0x%04x\n", ks.Name(), ks.Code())
		return nil
	},
}

var utf32Cmd = &cobra.Command{
	Use:   "utf32 KEY",
	Short: "Translate a key to the character it types",
	Long: `Translate a key to the Unicode code point it types under the given
modifiers. Prints U+0000 when the key types no character.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, mods, err := translationArgs(cmd, args)
		if err != nil {
			return err
		}

		svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer closeServices(svc)

		fmt.Fprintln(cmd.OutOrStdout(), formatCodePoint(svc.Keyboard.UTF32ForKey(key, mods)))
		return nil
	},
}

var keyNamesCmd = &cobra.Command{
	Use:   "key-names",
	Short: "List the key names accepted by keysym and utf32",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(knownKeyNames(), " "))
	},
}

func translationArgs(cmd *cobra.Command, args []string) (uint32, input.KeyModifiers, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return 0, input.KeyModifiers{}, err
	}
	mods, err := keyModifiers(cmd)
	if err != nil {
		return 0, input.KeyModifiers{}, err
	}
	return key, mods, nil
}

// formatCodePoint renders cp as U+XXXX, followed by the character when it
// is printable
func formatCodePoint(cp uint32) string {
	s := fmt.Sprintf("U+%04X", cp)
	if cp >= 0x20 && cp != 0x7f {
		s += fmt.Sprintf("\t%q", rune(cp))
	}
	return s
}

func init() {
	addModifierFlags(keysymCmd)
	addModifierFlags(utf32Cmd)

	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(keysymCmd)
	rootCmd.AddCommand(utf32Cmd)
	rootCmd.AddCommand(keyNamesCmd)
}
