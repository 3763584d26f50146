package lang

import "fmt"

const (
	Ar = "ar"
	En = "en"
)

// Default is used when a user has not picked a language.
const Default = Ar

func Valid(code string) bool {
	return code == Ar || code == En
}

// T returns the text for key in the given language, formatted with args.
// Unknown languages use Default; unknown keys fall back to English, then to the key itself.
func T(code, key string, args ...interface{}) string {
	table, ok := tables[code]
	if !ok {
		table = tables[Default]
	}
	s, ok := table[key]
	if !ok {
		if s, ok = tables[En][key]; !ok {
			s = key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

var tables = map[string]map[string]string{
	Ar: ar,
	En: en,
}

var ar = map[string]string{
	"currency":         "ر.س",
	"reviewer_me":      "أنا",
	"login_title":      "تسجيل الدخول",
	"signup_title":     "إنشاء حساب جديد",
	"login_btn":        "دخول",
	"signup_btn":       "تسجيل",
	"signup_link":      "ليس لديك حساب؟ اشترك الآن",
	"field_email":      "البريد الإلكتروني",
	"field_password":   "كلمة المرور",
	"field_name":       "الاسم الكامل",
	"form_prompt":      "أرسل %s:",
	"form_invalid":     "يرجى التحقق من: %s",
	"menu_title":       "قائمة الطعام",
	"cart_badge":       "🛒 السلة (%d)",
	"category_label":   "القسم: %s",
	"no_items":         "لا توجد أصناف في هذا القسم",
	"cat_all":          "الكل",
	"cat_seafood":      "مأكولات بحرية",
	"cat_sandwiches":   "ساندويشات",
	"cat_mains":        "أطباق رئيسية",
	"cat_soups":        "شوربات",
	"cat_appetizers":   "مقبلات",
	"cat_drinks":       "مشروبات",
	"details_title":    "تفاصيل الوجبة",
	"desc_header":      "المكونات والوصف:",
	"ingredients":      "المكونات: %s",
	"rating":           "التقييم: %.1f",
	"reviews_header":   "التقييمات والتعليقات",
	"no_reviews":       "لا توجد تعليقات بعد",
	"stars_picked":     "تقييمك: %s",
	"review_prompt":    "أكتب تعليقك...",
	"review_btn":       "نشر التعليق",
	"review_thanks":    "شكراً، تم إضافة تعليقك",
	"add_to_cart":      "إضافة للسلة",
	"added_to_cart":    "نجاح: تمت إضافة الصنف للسلة",
	"cart_title":       "سلة المشتريات",
	"cart_empty":       "السلة فارغة",
	"total":            "الإجمالي: %d %s",
	"choose_payment":   "اختر طريقة الدفع:",
	"pay_cash":         "كاش 💵",
	"pay_visa":         "فيزا 💳",
	"pay_cash_short":   "كاش",
	"pay_visa_short":   "فيزا",
	"checkout_btn":     "إتمام الطلب",
	"confirm_title":    "تأكيد الطلب",
	"confirm_body":     "المجموع: %d %s\nطريقة الدفع: %s",
	"confirm_btn":      "تأكيد",
	"cancel_btn":       "إلغاء",
	"order_placed":     "تم الطلب بنجاح!",
	"order_cancelled":  "تم إلغاء التأكيد",
	"back":             "رجوع",
	"choose_lang":      "اختر اللغة / Choose language",
	"language_changed": "تم تغيير اللغة",
	"not_available":    "هذا الإجراء غير متاح هنا",
	"item_not_found":   "الصنف غير موجود",
	"unknown_category": "قسم غير معروف",
	"unknown_payment":  "طريقة دفع غير معروفة",
	"unknown_command":  "أمر غير معروف. اكتب help",
	"something_wrong":  "حدث خطأ، حاول مرة أخرى",
}

var en = map[string]string{
	"currency":         "SAR",
	"reviewer_me":      "Me",
	"login_title":      "Log in",
	"signup_title":     "Create account",
	"login_btn":        "Log in",
	"signup_btn":       "Sign up",
	"signup_link":      "No account? Sign up now",
	"field_email":      "email",
	"field_password":   "password",
	"field_name":       "full name",
	"form_prompt":      "Send your %s:",
	"form_invalid":     "Please check: %s",
	"menu_title":       "Menu",
	"cart_badge":       "🛒 Cart (%d)",
	"category_label":   "Category: %s",
	"no_items":         "No items in this category",
	"cat_all":          "All",
	"cat_seafood":      "Seafood",
	"cat_sandwiches":   "Sandwiches",
	"cat_mains":        "Main dishes",
	"cat_soups":        "Soups",
	"cat_appetizers":   "Appetizers",
	"cat_drinks":       "Drinks",
	"details_title":    "Meal details",
	"desc_header":      "Ingredients and description:",
	"ingredients":      "Ingredients: %s",
	"rating":           "Rating: %.1f",
	"reviews_header":   "Ratings and comments",
	"no_reviews":       "No comments yet",
	"stars_picked":     "Your rating: %s",
	"review_prompt":    "Write your comment...",
	"review_btn":       "Post comment",
	"review_thanks":    "Thanks, your comment was added",
	"add_to_cart":      "Add to cart",
	"added_to_cart":    "Success: item added to cart",
	"cart_title":       "Shopping cart",
	"cart_empty":       "Your cart is empty",
	"total":            "Total: %d %s",
	"choose_payment":   "Choose payment method:",
	"pay_cash":         "Cash 💵",
	"pay_visa":         "Visa 💳",
	"pay_cash_short":   "Cash",
	"pay_visa_short":   "Visa",
	"checkout_btn":     "Place order",
	"confirm_title":    "Confirm order",
	"confirm_body":     "Total: %d %s\nPayment method: %s",
	"confirm_btn":      "Confirm",
	"cancel_btn":       "Cancel",
	"order_placed":     "Order placed successfully!",
	"order_cancelled":  "Confirmation cancelled",
	"back":             "Back",
	"choose_lang":      "اختر اللغة / Choose language",
	"language_changed": "Language changed",
	"not_available":    "That action is not available here",
	"item_not_found":   "Item not found",
	"unknown_category": "Unknown category",
	"unknown_payment":  "Unknown payment method",
	"unknown_command":  "Unknown command. Type help",
	"something_wrong":  "Something went wrong, please try again",
}
