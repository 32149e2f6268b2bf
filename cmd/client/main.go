package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/genaipb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Small terminal client, mostly for poking at a running server.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: client <question...>")
		os.Exit(2)
	}
	question := strings.Join(os.Args[1:], " ")

	addr := os.Getenv("GRPC_ADDR")
	if addr == "" {
		addr = "localhost:50051"
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create gRPC client")
	}
	defer conn.Close()

	client := genaipb.NewGenAiServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp, err := client.AskQuestion(ctx, &genaipb.QuestionRequest{Question: question})
	if err != nil {
		log.Fatal().Err(err).Msg("AskQuestion failed")
	}

	fmt.Println(resp.GetAnswer())
}
