package models

type User struct {
	tableName struct{} `pg:"users"`

	Id           string `pg:",pk" json:"id"`
	Username     string `pg:",unique" json:"username"`
	PasswordHash string `json:"-"`
	TokenType    string `json:"token_type"`
}

type UserDto struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
