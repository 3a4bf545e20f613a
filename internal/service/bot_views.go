package service

import (
	"fmt"
	"strings"

	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/pkg/token"
)

// Render helpers for the chat surface. Encoding a control token can only
// fail on programmer error, so failures drop the control instead of the
// whole reply.

func control(label string, kind token.Kind, subjectId int64, params ...int64) *dto.Control {
	t, err := token.Encode(kind, subjectId, params...)
	if err != nil {
		return nil
	}
	return &dto.Control{Label: label, Token: t}
}

func appendControl(controls []dto.Control, c *dto.Control) []dto.Control {
	if c == nil {
		return controls
	}
	return append(controls, *c)
}

func renderMainMenu(text string, roots []dto.CategoryNodeResponse) *dto.Outbound {
	out := &dto.Outbound{Text: text}
	for _, root := range roots {
		out.Controls = appendControl(out.Controls, control(root.Name, token.KindOpenCategory, int64(root.Id)))
	}
	return out
}

func renderCategoryView(view *dto.CategoryViewResponse) *dto.Outbound {
	if view.Products != nil {
		out := renderProductPage(view.Products)
		out.Text = strings.Join(view.Breadcrumb, " / ") + "\n" + out.Text
		return out
	}

	out := &dto.Outbound{Text: strings.Join(view.Breadcrumb, " / ")}
	for _, child := range view.Children {
		out.Controls = appendControl(out.Controls, control(child.Name, token.KindOpenCategory, int64(child.Id)))
	}
	if len(view.Children) == 0 {
		out.Text += "\nThis section is empty for now."
	}
	return out
}

func renderProductPage(page *dto.ProductPageResponse) *dto.Outbound {
	out := &dto.Outbound{
		Text: fmt.Sprintf("Page %d of %d", page.Page, page.TotalPages),
	}
	if len(page.Items) == 0 {
		out.Text = "No products here yet."
	}
	for _, item := range page.Items {
		label := item.Name
		if item.Price != nil {
			label = fmt.Sprintf("%s — %.2f", item.Name, *item.Price)
		}
		out.Controls = appendControl(out.Controls, control(label, token.KindOpenProduct, int64(item.Id)))
	}
	if page.HasPrev {
		out.Controls = appendControl(out.Controls, control("« Prev", token.KindChangePage, int64(page.CategoryId), int64(page.PrevOffset)))
	}
	if page.HasNext {
		out.Controls = appendControl(out.Controls, control("Next »", token.KindChangePage, int64(page.CategoryId), int64(page.NextOffset)))
	}
	return out
}

func renderProductCard(card *dto.ProductCardResponse) *dto.Outbound {
	var b strings.Builder
	b.WriteString(card.Name)
	if card.Price != nil {
		fmt.Fprintf(&b, "\nPrice: %.2f", *card.Price)
	}
	if card.Description != nil && *card.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(*card.Description)
	}

	out := &dto.Outbound{
		Text:     b.String(),
		ImageURL: card.ImageURL,
	}
	out.Controls = appendControl(out.Controls, control("Add to cart", token.KindAddToCart, int64(card.Id)))
	out.Controls = appendControl(out.Controls, control("Ask the advisor", token.KindOpenConsultation, int64(card.Id)))
	out.Controls = appendControl(out.Controls, control("Back", token.KindOpenCategory, int64(card.CategoryId)))
	return out
}

func renderLineAdded(line *dto.CartLineResponse) *dto.Outbound {
	out := &dto.Outbound{
		Text: fmt.Sprintf("%s added to your cart (×%.0f).", line.ProductName, line.Quantity),
	}
	out.Controls = appendControl(out.Controls, control("+1", token.KindChangeQuantity, int64(line.ProductId), int64(line.Quantity)+1))
	if line.Quantity > 1 {
		out.Controls = appendControl(out.Controls, control("-1", token.KindChangeQuantity, int64(line.ProductId), int64(line.Quantity)-1))
	}
	out.Controls = appendControl(out.Controls, control("Remove", token.KindRemoveFromCart, int64(line.ProductId)))
	return out
}

func renderCartSummary(text string, summary *dto.CartSummaryResponse) *dto.Outbound {
	var b strings.Builder
	if text != "" {
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	if summary.Count == 0 {
		b.WriteString("Your cart is empty.")
		return &dto.Outbound{Text: b.String()}
	}

	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "%s × %.0f %s = %.2f\n", line.ProductName, line.Quantity, line.Unit, line.LineTotal)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f", summary.Total)

	out := &dto.Outbound{Text: b.String()}
	out.Controls = appendControl(out.Controls, control("Clear cart", token.KindClearCart, 0))
	return out
}

func renderSearchResults(term string, items []dto.ProductCardResponse) *dto.Outbound {
	out := &dto.Outbound{
		Text: fmt.Sprintf("Here's what matches %q:", term),
	}
	for _, item := range items {
		label := item.Name
		if item.Price != nil {
			label = fmt.Sprintf("%s — %.2f", item.Name, *item.Price)
		}
		out.Controls = appendControl(out.Controls, control(label, token.KindOpenProduct, int64(item.Id)))
	}
	return out
}

func renderConsultationStarted(productName string) *dto.Outbound {
	return &dto.Outbound{
		Text: fmt.Sprintf("You're now consulting about %s. Type your question, I'll answer based on the product details.", productName),
	}
}
