package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

const (
	msgNoProducts    = "No products found."
	msgInvalidChoice = "Invalid choice. Try again."
	msgInvalidNumber = "Invalid number, try again."
	msgOrderPlaced   = "Order placed successfully!"
	msgNoOrders      = "No orders yet."
	msgGoodbye       = "Goodbye!"
)

// ConsoleHandler is the numbered text menu over one Store and the account
// that is currently shopping.
type ConsoleHandler struct {
	store    *service.Store
	account  *domain.Account
	in       io.Reader
	out      io.Writer
	currency string
	err      error // first write error

	lines   <-chan string
	eof     bool
	readErr error // set by the reader before lines is closed
}

func NewConsoleHandler(store *service.Store, account *domain.Account, in io.Reader, out io.Writer, currency string) *ConsoleHandler {
	return &ConsoleHandler{
		store:    store,
		account:  account,
		in:       in,
		out:      out,
		currency: currency,
	}
}

// Run serves menu choices until the operator exits, input ends or ctx is done.
// A cancelled ctx interrupts a pending prompt and Run returns ctx.Err().
func (h *ConsoleHandler) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	lines := make(chan string)
	h.lines = lines
	go h.readInput(lines, stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.printMenu()
		choice, ok := h.readLine(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			h.println(msgGoodbye)
			return h.finish()
		}

		var done bool
		switch strings.TrimSpace(choice) {
		case "1":
			done = h.searchByPrice(ctx)
		case "2":
			done = h.searchByCategory(ctx)
		case "3":
			done = h.searchByRating(ctx)
		case "4":
			var err error
			done, err = h.purchase(ctx)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				return err
			}
		case "5":
			h.history()
		case "6":
			done = true
		default:
			h.println(msgInvalidChoice)
		}

		if h.err != nil {
			return h.err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if done {
			h.println(msgGoodbye)
			return h.finish()
		}
	}
}

func (h *ConsoleHandler) printMenu() {
	h.println("\n---- Menu ----")
	h.println("1. Search products by price")
	h.println("2. Search products by category")
	h.println("3. Search products by rating")
	h.println("4. Place an order")
	h.println("5. View purchase history")
	h.println("6. Exit")
	h.print("Choose an option: ")
}

// Each action returns true when input ran out mid-prompt.

func (h *ConsoleHandler) searchByPrice(ctx context.Context) bool {
	min, ok := h.readNumber(ctx, "Enter minimum price: ")
	if !ok {
		return true
	}
	max, ok := h.readNumber(ctx, "Enter maximum price: ")
	if !ok {
		return true
	}
	h.displayProducts(h.store.Catalog().SearchByPriceRange(min, max))
	return false
}

// The category is matched as typed, only case is folded.
func (h *ConsoleHandler) searchByCategory(ctx context.Context) bool {
	h.print("Enter product category: ")
	category, ok := h.readLine(ctx)
	if !ok {
		return true
	}
	h.displayProducts(h.store.Catalog().SearchByCategory(category))
	return false
}

func (h *ConsoleHandler) searchByRating(ctx context.Context) bool {
	min, ok := h.readNumber(ctx, "Enter minimum rating: ")
	if !ok {
		return true
	}
	h.displayProducts(h.store.Catalog().SearchByMinRating(min))
	return false
}

func (h *ConsoleHandler) purchase(ctx context.Context) (bool, error) {
	h.println("Choose products for the order:")
	products := h.store.Products()
	if len(products) == 0 {
		h.println(msgNoProducts)
	}
	for i, p := range products {
		h.printf("[%d] %s\n", i, FormatProduct(p, h.currency))
	}

	var indices []int
	for {
		h.print("Enter product indices separated by commas (e.g. 0,1): ")
		line, ok := h.readLine(ctx)
		if !ok {
			return true, nil
		}
		parsed, err := ParseIndices(line)
		if err != nil {
			h.println(msgInvalidNumber)
			continue
		}
		indices = parsed
		break
	}

	order, err := h.store.Purchase(ctx, h.account, h.store.SelectProducts(indices))
	if err != nil {
		return false, fmt.Errorf("purchase: %w", err)
	}

	h.println(msgOrderPlaced)
	h.println(FormatOrder(order, h.currency))
	return false, nil
}

func (h *ConsoleHandler) history() {
	h.println("Purchase history:")
	orders := h.store.History(h.account)
	if len(orders) == 0 {
		h.println(msgNoOrders)
		return
	}
	for _, o := range orders {
		h.println(FormatOrder(o, h.currency))
	}
}

func (h *ConsoleHandler) displayProducts(products []domain.Product) {
	if len(products) == 0 {
		h.println(msgNoProducts)
		return
	}
	for _, p := range products {
		h.println(FormatProduct(p, h.currency))
	}
}

// readNumber re-prompts until the line parses as a number.
func (h *ConsoleHandler) readNumber(ctx context.Context, prompt string) (float64, bool) {
	for {
		h.print(prompt)
		line, ok := h.readLine(ctx)
		if !ok {
			return 0, false
		}
		v, err := parseNumber(line)
		if err == nil {
			return v, true
		}
		h.println(msgInvalidNumber)
	}
}

// readInput scans h.in on its own goroutine so that a blocked read never
// holds up cancellation. lines is closed once input ends.
func (h *ConsoleHandler) readInput(lines chan<- string, stop <-chan struct{}) {
	defer close(lines)
	sc := bufio.NewScanner(h.in)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-stop:
			return
		}
	}
	h.readErr = sc.Err()
}

// readLine returns false on end of input or when ctx is done.
func (h *ConsoleHandler) readLine(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-h.lines:
		if !ok {
			h.eof = true
			return "", false
		}
		return line, true
	}
}

func (h *ConsoleHandler) finish() error {
	if h.err != nil {
		return h.err
	}
	if h.eof && h.readErr != nil {
		return fmt.Errorf("read input: %w", h.readErr)
	}
	return nil
}

func (h *ConsoleHandler) print(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.out, s)
	}
}

func (h *ConsoleHandler) println(s string) {
	h.print(s + "\n")
}

func (h *ConsoleHandler) printf(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.out, format, args...)
	}
}
