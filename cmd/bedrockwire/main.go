package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cooldogedev/bedrockwire/packet"
	"github.com/cooldogedev/bedrockwire/stream"
	"github.com/cooldogedev/bedrockwire/util"
	"github.com/olekukonko/tablewriter"
)

const usage = `usage: bedrockwire [-config file] [-v] <command> [args]

commands:
  ids            list all registered packets
  decode <hex>   decode a packet made up of its header and body
  frame <hex>    decode a length prefixed, possibly compressed, stream frame
`

func main() {
	configPath := flag.String("config", "", "path to a TOML file holding stream settings")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := util.DefaultOpts()
	if *configPath != "" {
		loaded, err := util.LoadOpts(*configPath)
		if err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		opts = loaded
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "ids":
		printIDs()
	case "decode":
		err = withHex(args, func(data []byte) error { return decode(data, logger) })
	case "frame":
		err = withHex(args, func(data []byte) error { return decodeFrame(data, opts, logger) })
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", args[0], "err", err)
		os.Exit(1)
	}
}

// withHex parses the hex encoded argument of a command and passes it to f.
func withHex(args []string, f func(data []byte) error) error {
	if len(args) != 2 {
		return fmt.Errorf("%v expects a single hex argument", args[0])
	}
	data, err := hex.DecodeString(strings.TrimPrefix(strings.ReplaceAll(args[1], " ", ""), "0x"))
	if err != nil {
		return fmt.Errorf("parse hex: %w", err)
	}
	return f(data)
}

func printIDs() {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"ID", "Packet"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)
	for _, id := range packet.IDs() {
		name, _ := packet.Name(id)
		tw.Append([]string{fmt.Sprintf("%#04x", id), name})
	}
	tw.Render()
}

func decode(data []byte, logger *slog.Logger) error {
	pk, header, err := packet.Decode(data)
	if err != nil {
		return err
	}
	logger.Debug("decoded packet", "id", header.PacketID, "sender", header.SenderSubClient, "target", header.TargetSubClient)
	return printPacket(header.PacketID, pk)
}

func decodeFrame(data []byte, opts *util.Opts, logger *slog.Logger) error {
	compression, err := stream.CompressionByName(opts.CompressionAlgorithm)
	if err != nil {
		return err
	}
	conn := stream.NewConn(bytes.NewBuffer(data), opts, logger)
	defer conn.Close()

	conn.SetCompression(compression, opts.CompressionThreshold)
	pk, err := conn.ReadPacket()
	if err != nil {
		return err
	}
	return printPacket(pk.ID(), pk)
}

func printPacket(id uint32, pk packet.Packet) error {
	name, _ := packet.Name(id)
	out, err := json.MarshalIndent(pk, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %v: %w", name, err)
	}
	fmt.Printf("%v (%#04x)\n%s\n", name, id, out)
	return nil
}
