package models

// Property is the persisted ownership state of a purchasable board
// space. The static pricing and rent data live in platform/board; the
// row carries enough denormalized catalog fields for clients to render
// without a second lookup.
type Property struct {
	tableName struct{} `pg:"properties"`

	Id            string  `pg:",pk" json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"property_type"`
	ColorGroup    string  `json:"color_group"`
	Position      int     `pg:"position_on_board,use_zero,unique" json:"position_on_board"`
	Price         int     `pg:",use_zero" json:"purchase_price"`
	OwnerId       *string `json:"owner_id"`
	IsMortgaged   bool    `pg:",use_zero" json:"is_mortgaged"`
	HouseCount    int     `pg:",use_zero" json:"house_count"`
	MortgageValue int     `pg:",use_zero" json:"mortgage_value"`
}

// OwnedBy reports whether the property is owned by the given player id.
func (p *Property) OwnedBy(playerId string) bool {
	return p.OwnerId != nil && *p.OwnerId == playerId
}
