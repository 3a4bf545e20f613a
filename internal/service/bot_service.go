package service

import (
	"context"
	"errors"
	"fmt"

	"agroshop-bot-be/internal/constant"
	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/pkg/logger"
	"agroshop-bot-be/internal/shared"
	"agroshop-bot-be/pkg/chat/access"
	"agroshop-bot-be/pkg/token"
)

// IBotService is the single entry point for inbound chat events. Every
// event yields exactly one outbound reply; internal faults degrade to the
// main menu rather than surfacing to the user.
type IBotService interface {
	HandleEvent(ctx context.Context, event *dto.InboundEvent) (*dto.Outbound, error)
}

type botService struct {
	userService     IUserService
	catalogService  ICatalogService
	cartService     ICartService
	advisoryService IAdvisoryService
	publisher       IPublisherService
	guard           *access.Guard
	logger          logger.ILogger
}

func NewBotService(
	userService IUserService,
	catalogService ICatalogService,
	cartService ICartService,
	advisoryService IAdvisoryService,
	publisher IPublisherService,
	guard *access.Guard,
	logger logger.ILogger,
) IBotService {
	return &botService{
		userService:     userService,
		catalogService:  catalogService,
		cartService:     cartService,
		advisoryService: advisoryService,
		publisher:       publisher,
		guard:           guard,
		logger:          logger,
	}
}

func (s *botService) HandleEvent(ctx context.Context, event *dto.InboundEvent) (*dto.Outbound, error) {
	if _, err := s.userService.RegisterOrUpdate(ctx, event); err != nil {
		// Registry trouble must not block the interaction.
		s.logger.Warn("bot", "user upsert failed", map[string]interface{}{
			"chat_id": event.ChatID,
			"error":   err.Error(),
		})
	}

	action := resolveAction(event)
	if decision := s.guard.Check(ctx, event.ChatID, action); !decision.Allowed {
		return &dto.Outbound{Text: decision.Prompt, RequestContact: true}, nil
	}

	out, err := s.dispatch(ctx, event, action)
	if err != nil {
		return s.recover(ctx, event.ChatID, err)
	}
	return out, nil
}

// resolveAction names the event for the access guard. Token actions are
// named by their kind so the exemption list stays meaningful.
func resolveAction(event *dto.InboundEvent) string {
	switch {
	case event.Contact != nil:
		return constant.ActionShareContact
	case event.Action != "":
		return event.Action
	case event.Token != "":
		act, err := token.Decode(event.Token)
		if err != nil {
			return "malformed"
		}
		return string(act.Kind)
	default:
		return "text"
	}
}

func (s *botService) dispatch(ctx context.Context, event *dto.InboundEvent, action string) (*dto.Outbound, error) {
	switch {
	case event.Contact != nil:
		return s.handleContact(ctx, event)
	case action == constant.ActionStart:
		return s.handleStart(ctx)
	case event.Token != "":
		return s.handleToken(ctx, event)
	case event.Text != "":
		return s.handleText(ctx, event)
	default:
		return s.mainMenu(ctx, "Choose a category to browse.")
	}
}

func (s *botService) handleStart(ctx context.Context) (*dto.Outbound, error) {
	return s.mainMenu(ctx, "Welcome to the farm supply store. Choose a category to browse.")
}

func (s *botService) handleContact(ctx context.Context, event *dto.InboundEvent) (*dto.Outbound, error) {
	if _, err := s.userService.CapturePhone(ctx, event.ChatID, event.Contact.Phone); err != nil {
		return nil, err
	}
	return s.mainMenu(ctx, "Thanks, you're all set. Choose a category to browse.")
}

func (s *botService) handleToken(ctx context.Context, event *dto.InboundEvent) (*dto.Outbound, error) {
	act, err := token.Decode(event.Token)
	if err != nil {
		s.logger.Warn("bot", "malformed action token", map[string]interface{}{
			"chat_id": event.ChatID,
			"token":   event.Token,
			"error":   err.Error(),
		})
		return s.mainMenu(ctx, "That action is no longer available. Choose a category to browse.")
	}

	switch act.Kind {
	case token.KindOpenCategory:
		view, err := s.catalogService.OpenCategory(ctx, uint(act.SubjectID))
		if err != nil {
			return nil, err
		}
		return renderCategoryView(view), nil

	case token.KindChangePage:
		page, err := s.catalogService.PageProducts(ctx, uint(act.SubjectID), int(act.Param(0)))
		if err != nil {
			return nil, err
		}
		return renderProductPage(page), nil

	case token.KindOpenProduct:
		card, err := s.catalogService.GetProduct(ctx, uint(act.SubjectID))
		if err != nil {
			return nil, err
		}
		s.trackView(ctx, event.ChatID, card)
		return renderProductCard(card), nil

	case token.KindAddToCart:
		line, err := s.cartService.AddItem(ctx, event.ChatID, uint(act.SubjectID), 1)
		if err != nil {
			return nil, err
		}
		return renderLineAdded(line), nil

	case token.KindChangeQuantity:
		line, err := s.cartService.SetQuantity(ctx, event.ChatID, uint(act.SubjectID), float64(act.Param(0)))
		if err != nil {
			return nil, err
		}
		if line == nil {
			return s.cartView(ctx, event.ChatID, "Item removed from your cart.")
		}
		return s.cartView(ctx, event.ChatID, fmt.Sprintf("%s: quantity set to %.0f.", line.ProductName, line.Quantity))

	case token.KindRemoveFromCart:
		removed, err := s.cartService.RemoveItem(ctx, event.ChatID, uint(act.SubjectID))
		if err != nil {
			return nil, err
		}
		if !removed {
			return s.cartView(ctx, event.ChatID, "That item was already gone.")
		}
		return s.cartView(ctx, event.ChatID, "Item removed from your cart.")

	case token.KindClearCart:
		removed, err := s.cartService.Clear(ctx, event.ChatID)
		if err != nil {
			return nil, err
		}
		return s.mainMenu(ctx, fmt.Sprintf("Cart cleared, %d item(s) removed.", removed))

	case token.KindOpenConsultation:
		session, err := s.advisoryService.Start(ctx, event.ChatID, uint(act.SubjectID))
		if err != nil {
			return nil, err
		}
		return renderConsultationStarted(session.ProductName), nil

	case token.KindAckNoop:
		return &dto.Outbound{Text: "Nothing to do."}, nil

	default:
		return s.mainMenu(ctx, "That action is no longer available. Choose a category to browse.")
	}
}

// handleText routes free text into the active consultation. Without one the
// text is tried as a product search before falling back to the advisor hint.
func (s *botService) handleText(ctx context.Context, event *dto.InboundEvent) (*dto.Outbound, error) {
	answer, err := s.advisoryService.Ask(ctx, event.ChatID, event.Text)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNoActiveSession):
			return s.searchOrHint(ctx, event.Text)
		case errors.Is(err, shared.ErrEmptyQuestion):
			return &dto.Outbound{Text: "Please type a question about the product."}, nil
		default:
			return nil, err
		}
	}
	return &dto.Outbound{Text: answer}, nil
}

func (s *botService) searchOrHint(ctx context.Context, text string) (*dto.Outbound, error) {
	results, err := s.catalogService.Search(ctx, text)
	if err != nil {
		s.logger.Warn("bot", "free-text search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if len(results) > 0 {
		return renderSearchResults(text, results), nil
	}
	return s.mainMenu(ctx, "Open a product and tap \"Ask the advisor\" to start a consultation.")
}

// trackView publishes the product view event; tracking never blocks the
// reply.
func (s *botService) trackView(ctx context.Context, chatId int64, card *dto.ProductCardResponse) {
	event := &dto.ProductViewedMessage{
		ChatID:    chatId,
		ProductId: card.Id,
		Source:    constant.ViewSourceCatalog,
	}
	if err := s.publisher.PublishProductViewed(ctx, event); err != nil {
		s.logger.Warn("bot", "view tracking failed", map[string]interface{}{
			"product_id": card.Id,
		})
	}
}

// recover maps domain errors to a safe outbound reply. Anything unexpected
// propagates to the controller.
func (s *botService) recover(ctx context.Context, chatId int64, err error) (*dto.Outbound, error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return s.mainMenu(ctx, "That item is no longer available. Choose a category to browse.")
	case errors.Is(err, shared.ErrStaleState):
		return s.cartView(ctx, chatId, "Your cart changed in the meantime. Here is its current state.")
	case errors.Is(err, shared.ErrCycleDetected):
		s.logger.Error("bot", "catalog integrity fault", map[string]interface{}{
			"chat_id": chatId,
			"error":   err.Error(),
		})
		return s.mainMenu(ctx, "Something went wrong with that section. Choose a category to browse.")
	default:
		return nil, err
	}
}

func (s *botService) mainMenu(ctx context.Context, text string) (*dto.Outbound, error) {
	roots, err := s.catalogService.ListRoots(ctx)
	if err != nil {
		return nil, err
	}
	return renderMainMenu(text, roots), nil
}

func (s *botService) cartView(ctx context.Context, chatId int64, text string) (*dto.Outbound, error) {
	summary, err := s.cartService.Summary(ctx, chatId)
	if err != nil {
		return nil, err
	}
	return renderCartSummary(text, summary), nil
}
