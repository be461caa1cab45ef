package http_test

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PostHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newTestRouter()
		w := perform(router, http.MethodPost, "/api/register", `{"name":"bob","email":"bob@x.com","password":"pw1"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
	})

	createPost := func(title string) map[string]any {
		w := perform(router, http.MethodPost, "/api/posts",
			`{"title":"`+title+`","content":"body","author_id":1}`)
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusCreated), w.Body.String())
		return decodeObject(w)["post"].(map[string]any)
	}

	It("percorre o fluxo completo de um post", func() {
		post := createPost("Hello")
		Expect(post["id"]).To(BeEquivalentTo(1))
		Expect(post["author"]).To(Equal("bob"))
		Expect(post["author_id"]).To(BeEquivalentTo(1))
		Expect(post).To(HaveKeyWithValue("image_url", BeNil()))
		Expect(post["created_at"]).To(Equal(post["updated_at"]))

		w := perform(router, http.MethodGet, "/api/posts/1", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeObject(w)["title"]).To(Equal("Hello"))

		w = perform(router, http.MethodDelete, "/api/posts/1", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		body := decodeObject(w)
		Expect(body["success"]).To(BeTrue())
		Expect(body["message"]).To(Equal("deleted"))

		w = perform(router, http.MethodGet, "/api/posts/1", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decodeObject(w)["message"]).To(Equal("post not found"))
	})

	Describe("POST /api/posts", func() {
		It("devolve 400 sem título", func() {
			w := perform(router, http.MethodPost, "/api/posts", `{"content":"body","author_id":1}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeObject(w)["message"]).To(Equal("title, content and author_id are required"))
		})

		It("devolve 404 para autor inexistente", func() {
			w := perform(router, http.MethodPost, "/api/posts", `{"title":"t","content":"c","author_id":99}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeObject(w)["message"]).To(Equal("author not found"))
		})

		It("lista erros de campo quando o título é longo demais", func() {
			payload := `{"title":"` + strings.Repeat("a", 201) + `","content":"c","author_id":1}`
			w := perform(router, http.MethodPost, "/api/posts", payload)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			body := decodeObject(w)
			Expect(body["message"]).To(Equal("one or more fields have invalid values"))
			errs := body["errors"].([]any)
			Expect(errs).To(HaveLen(1))
			Expect(errs[0]).To(HaveKeyWithValue("field", "title"))
			Expect(errs[0]).To(HaveKeyWithValue("tag", "max"))
		})

		DescribeTable("aponta o campo quando author_id tem o tipo errado",
			func(authorID string) {
				w := perform(router, http.MethodPost, "/api/posts", `{"title":"t","content":"c","author_id":`+authorID+`}`)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				body := decodeObject(w)
				Expect(body["message"]).To(Equal("one or more fields have invalid values"))
				errs := body["errors"].([]any)
				Expect(errs).To(HaveLen(1))
				Expect(errs[0]).To(HaveKeyWithValue("field", "author_id"))
				Expect(errs[0]).To(HaveKeyWithValue("tag", "type"))
			},
			Entry("string numérica", `"1"`),
			Entry("número negativo", `-5`),
		)

		It("mantém a mensagem de corpo inválido para JSON malformado", func() {
			w := perform(router, http.MethodPost, "/api/posts", `[1,2`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			body := decodeObject(w)
			Expect(body["message"]).To(Equal("request body must be a JSON object"))
			Expect(body).NotTo(HaveKey("errors"))
		})
	})

	Describe("PUT /api/posts/:id", func() {
		BeforeEach(func() {
			perform(router, http.MethodPost, "/api/posts",
				`{"title":"Hello","content":"body","image_url":"http://img/1.png","author_id":1}`)
		})

		It("altera só os campos informados", func() {
			w := perform(router, http.MethodPut, "/api/posts/1", `{"title":"Changed"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			post := decodeObject(w)["post"].(map[string]any)
			Expect(post["title"]).To(Equal("Changed"))
			Expect(post["content"]).To(Equal("body"))
			Expect(post["image_url"]).To(Equal("http://img/1.png"))
		})

		It("limpa a imagem com null explícito", func() {
			w := perform(router, http.MethodPut, "/api/posts/1", `{"image_url":null}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeObject(w)["post"]).To(HaveKeyWithValue("image_url", BeNil()))
		})

		It("devolve 404 para post inexistente", func() {
			w := perform(router, http.MethodPut, "/api/posts/7", `{"title":"x"}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("listagens", func() {
		It("lista posts em array puro, mais recentes primeiro", func() {
			createPost("first")
			createPost("second")

			w := perform(router, http.MethodGet, "/api/posts", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			posts := decodeArray(w)
			Expect(posts).To(HaveLen(2))
			Expect(posts[0]).To(HaveKeyWithValue("title", "second"))
		})

		It("lista vazio como []", func() {
			w := perform(router, http.MethodGet, "/api/posts", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
		})

		It("lista posts por usuário", func() {
			createPost("mine")

			w := perform(router, http.MethodGet, "/api/users/1/posts", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeArray(w)).To(HaveLen(1))

			w = perform(router, http.MethodGet, "/api/users/99/posts", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeObject(w)["message"]).To(Equal("user not found"))
		})
	})

	It("responde /health", func() {
		w := perform(router, http.MethodGet, "/health", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeObject(w)).To(HaveKeyWithValue("status", "ok"))
	})
})
