package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"limitbook/params"
	"limitbook/pkg/book"
	"limitbook/pkg/util"
)

func main() {
	cfg := params.LoadFromEnv("") // "" means load from .env in current directory

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Log.File != "" {
		logger, err = util.NewLoggerWithFile(cfg.Log.File, cfg.Log.Verbose)
	} else {
		logger, err = util.NewLogger(cfg.Log.Verbose)
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	b := book.New()
	b.Logger = sugar

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n1. Add Order\n2. Display Orders\n3. Exit\nEnter your choice: ")
		choice, ok := readLine(in)
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			addOrder(in, b)
		case "2":
			fmt.Print("\n" + book.RenderTable(b.Snapshot()))
		case "3":
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice! Try again.")
		}
	}
}

// addOrder reads and validates one order from the console. Invalid side
// strings and malformed or non-positive numbers are rejected here; the book
// never sees them.
func addOrder(in *bufio.Scanner, b *book.Book) {
	fmt.Print("Enter order type (buy/sell): ")
	raw, ok := readLine(in)
	if !ok {
		return
	}
	side, err := book.ParseSide(raw)
	if err != nil {
		fmt.Println("Invalid order type! Use 'buy' or 'sell'.")
		return
	}

	fmt.Print("Enter price: ")
	raw, ok = readLine(in)
	if !ok {
		return
	}
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		fmt.Println("Invalid price! Enter a positive number.")
		return
	}

	fmt.Print("Enter quantity: ")
	raw, ok = readLine(in)
	if !ok {
		return
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || qty <= 0 {
		fmt.Println("Invalid quantity! Enter a positive integer.")
		return
	}

	for _, t := range b.Submit(side, price, qty) {
		fmt.Printf("Match! Buyer %d and Seller %d trade %d units at $%s\n",
			t.BuyID, t.SellID, t.Qty, t.Price.String())
	}
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}
