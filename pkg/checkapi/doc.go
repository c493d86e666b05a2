// Package checkapi exposes the validator predicates over HTTP.
//
// Routes (relative to where Router is mounted):
//
//	GET  /kinds        list supported kinds
//	POST /check        {"kind": "chinese_tel", "value": "13812345678"}
//	POST /check/batch  {"items": [{"field": "phone", "kind": "chinese_tel", "value": "..."}]}
//
// Failure messages are localized with the messages catalog according to the
// Accept-Language header; the chosen language is echoed in Content-Language.
package checkapi
