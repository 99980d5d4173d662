package models

// Comment is the body of POST /swift/api_comment. Author is the user id of
// the commenting manager; CommentDate is formatted by the caller.
type Comment struct {
	ClientINN   string `json:"client_inn"`
	Author      int    `json:"author"`
	Comment     string `json:"comment"`
	CommentDate string `json:"comment_date"`
}
