package domain

// Error is a typed, non-retryable escrow failure. Code is stable and safe
// to expose to clients; Message is human readable.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// State machine failures.
var (
	ErrUnauthorized            = newError("Unauthorized", "caller is not allowed to perform this operation")
	ErrCampaignEnded           = newError("CampaignEnded", "the campaign has ended")
	ErrCampaignStillActive     = newError("CampaignStillActive", "the campaign is still active")
	ErrCampaignCancelled       = newError("CampaignCancelled", "the campaign is cancelled")
	ErrCampaignNotCancelled    = newError("CampaignNotCancelled", "the campaign is not cancelled")
	ErrAlreadyCancelled        = newError("AlreadyCancelled", "the campaign is already cancelled")
	ErrCampaignGoalReached     = newError("CampaignGoalReached", "the campaign goal was reached")
	ErrCampaignGoalNotReached  = newError("CampaignGoalNotReached", "the campaign goal was not reached")
	ErrAlreadyWithdrawn        = newError("AlreadyWithdrawn", "funds have already been withdrawn")
	ErrAlreadyWithdrawnByOwner = newError("AlreadyWithdrawnByOwner", "owner has already withdrawn")
	ErrNothingToWithdraw       = newError("NothingToWithdraw", "no funds available to withdraw")
	ErrOverflow                = newError("Overflow", "arithmetic overflow")
)

// Account and input failures.
var (
	ErrInsufficientFunds  = newError("InsufficientFunds", "insufficient funds")
	ErrInvalidAmount      = newError("InvalidAmount", "amount must be greater than zero")
	ErrInvalidGoal        = newError("InvalidGoal", "goal must be greater than zero")
	ErrNameTooLong        = newError("NameTooLong", "campaign name is too long")
	ErrDescriptionTooLong = newError("DescriptionTooLong", "campaign description is too long")
	ErrCampaignNotFound   = newError("CampaignNotFound", "campaign not found")
	ErrCampaignExists     = newError("CampaignExists", "campaign already exists")
)
